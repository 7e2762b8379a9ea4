package modem

import (
	"strconv"
	"strings"

	"simbridge/internal/errors"
)

// ErrMalformedResponse marks AT output the parsers could not make sense of.
// Callers log and drop; a garbled modem line must never crash a session.
var ErrMalformedResponse = errors.New("malformed AT response")

const csqUnknown = 99

// ParseCSQ extracts the RSSI from a "+CSQ: <rssi>,<ber>" response and
// scales it from the 0..31 modem range to a 0..100 percentage.
// The reserved value 99 (not detectable) maps to 0.
func ParseCSQ(response string) (int, error) {
	line, ok := findPrefixedLine(response, "+CSQ:")
	if !ok {
		return 0, errors.Wrap(ErrMalformedResponse, "no +CSQ line")
	}

	fields := strings.SplitN(strings.TrimSpace(strings.TrimPrefix(line, "+CSQ:")), ",", 2)
	rssi, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedResponse, "bad rssi %q", fields[0])
	}

	if rssi == csqUnknown || rssi < 0 {
		return 0, nil
	}
	if rssi > 31 {
		rssi = 31
	}

	return rssi * 100 / 31, nil
}

// ParseCOPS extracts the operator name from a "+COPS: <mode>,<format>,"<oper>"" response.
// An empty string means the modem is not registered on any network.
func ParseCOPS(response string) (string, error) {
	line, ok := findPrefixedLine(response, "+COPS:")
	if !ok {
		return "", errors.Wrap(ErrMalformedResponse, "no +COPS line")
	}

	quoted := extractQuoted(line)
	if len(quoted) == 0 {
		return "", nil
	}

	return quoted[0], nil
}

// ParseCNUM extracts the subscriber number from a "+CNUM: "<alpha>","<number>",<type>" response.
func ParseCNUM(response string) (string, error) {
	line, ok := findPrefixedLine(response, "+CNUM:")
	if !ok {
		return "", errors.Wrap(ErrMalformedResponse, "no +CNUM line")
	}

	quoted := extractQuoted(line)
	for _, candidate := range quoted {
		if candidate == "" {
			continue
		}
		if strings.IndexFunc(candidate, func(r rune) bool {
			return (r < '0' || r > '9') && r != '+'
		}) == -1 {
			return candidate, nil
		}
	}

	return "", errors.Wrap(ErrMalformedResponse, "no number field in +CNUM")
}

// ParseCCID extracts the SIM ICCID. Modems answer either with a bare
// numeric line or with a "+CCID:" prefix.
func ParseCCID(response string) (string, error) {
	for _, line := range splitLines(response) {
		if strings.HasPrefix(line, "+CCID:") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "+CCID:"))
		}
		line = strings.Trim(line, "\"")
		if len(line) >= 18 && isDigits(strings.TrimSuffix(line, "F")) {
			return line, nil
		}
	}

	return "", errors.Wrap(ErrMalformedResponse, "no ICCID in response")
}

// ParseIMEI extracts the device IMEI from an AT+GSN response.
func ParseIMEI(response string) (string, error) {
	for _, line := range splitLines(response) {
		if len(line) >= 14 && len(line) <= 17 && isDigits(line) {
			return line, nil
		}
	}

	return "", errors.Wrap(ErrMalformedResponse, "no IMEI in response")
}

// ParseCMTI extracts the storage name and slot index from an unsolicited
// "+CMTI: "<mem>",<index>" notification line.
func ParseCMTI(line string) (storage string, index int, err error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "+CMTI:") {
		return "", 0, errors.Wrapf(ErrMalformedResponse, "not a +CMTI line: %q", line)
	}

	fields := strings.SplitN(strings.TrimPrefix(trimmed, "+CMTI:"), ",", 2)
	if len(fields) != 2 {
		return "", 0, errors.Wrapf(ErrMalformedResponse, "bad +CMTI fields: %q", line)
	}

	storage = strings.Trim(strings.TrimSpace(fields[0]), "\"")
	index, convErr := strconv.Atoi(strings.TrimSpace(fields[1]))
	if convErr != nil {
		return "", 0, errors.Wrapf(ErrMalformedResponse, "bad +CMTI index: %q", line)
	}

	return storage, index, nil
}

// ParseCMGR extracts the sender and body from a text mode AT+CMGR response:
//
//	+CMGR: "REC UNREAD","+79161234567",,"24/08/21,10:11:12+12"
//	<body line(s)>
//	OK
func ParseCMGR(response string) (sender, text string, err error) {
	lines := splitLines(response)

	headerIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "+CMGR:") {
			headerIdx = i

			break
		}
	}
	if headerIdx == -1 {
		return "", "", errors.Wrap(ErrMalformedResponse, "no +CMGR header")
	}

	quoted := extractQuoted(lines[headerIdx])
	if len(quoted) < 2 {
		return "", "", errors.Wrap(ErrMalformedResponse, "no sender in +CMGR header")
	}
	sender = quoted[1]

	var body []string
	for _, line := range lines[headerIdx+1:] {
		if line == "OK" || line == "ERROR" {
			break
		}
		body = append(body, line)
	}
	if len(body) == 0 {
		return "", "", errors.Wrap(ErrMalformedResponse, "empty +CMGR body")
	}

	return sender, strings.Join(body, "\n"), nil
}

func findPrefixedLine(response, prefix string) (string, bool) {
	for _, line := range splitLines(response) {
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}

	return "", false
}

func splitLines(response string) []string {
	raw := strings.Split(strings.ReplaceAll(response, "\r", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
	}

	return lines
}

func extractQuoted(line string) []string {
	var out []string
	for {
		start := strings.IndexByte(line, '"')
		if start == -1 {
			return out
		}
		end := strings.IndexByte(line[start+1:], '"')
		if end == -1 {
			return out
		}
		out = append(out, line[start+1:start+1+end])
		line = line[start+end+2:]
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
