package modem

// AT command set used by the bridge. Text mode only; every inbound
// message is read explicitly with CMGR after a CMTI notification.
const (
	CmdEchoOff         = "ATE0"
	CmdTextMode        = "AT+CMGF=1"
	CmdNotifyOnSMS     = "AT+CNMI=2,1"
	CmdSetStorage      = "AT+CPMS=\"SM\",\"SM\",\"SM\""
	CmdSignalQuality   = "AT+CSQ"
	CmdOperator        = "AT+COPS?"
	CmdICCID           = "AT+CCID"
	CmdIMEI            = "AT+GSN"
	CmdOwnNumber       = "AT+CNUM"
	CmdReadSMSFormat   = "AT+CMGR=%d"
	CmdDeleteSMSFormat = "AT+CMGD=%d"
)
