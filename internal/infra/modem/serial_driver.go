package modem

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"simbridge/config"
	"simbridge/internal/domain/entity"
	"simbridge/internal/errors"

	"github.com/tarm/serial"
)

const (
	serialReadTimeout  = 200 * time.Millisecond
	notificationBuffer = 32
)

// pendingCommand collects response lines for the single in-flight command.
type pendingCommand struct {
	lines []string
	done  chan commandResult
}

type commandResult struct {
	response string
	err      error
}

// serialDriver implements Driver over a tarm/serial port. A single
// dispatch goroutine owns all reads from the port and routes each line
// either to the in-flight command or to the notification channel.
type serialDriver struct {
	port   *serial.Port
	logger *slog.Logger

	// commandMu enforces one in-flight command per port.
	commandMu sync.Mutex

	mu      sync.Mutex
	pending *pendingCommand

	notifications chan string
	closed        chan struct{}
	closeOnce     sync.Once
}

// OpenSerial opens the configured port and starts the dispatch loop.
func OpenSerial(cfg config.ModemConfig, logger *slog.Logger) (Driver, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Port,
		Baud:        cfg.BaudRate,
		ReadTimeout: serialReadTimeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open serial port %s", cfg.Port)
	}

	driver := &serialDriver{
		port:          port,
		logger:        logger.With(slog.String("port", cfg.Port)),
		notifications: make(chan string, notificationBuffer),
		closed:        make(chan struct{}),
	}
	go driver.dispatchLoop()

	return driver, nil
}

func (d *serialDriver) SendCommand(ctx context.Context, cmd string, timeout time.Duration) (string, error) {
	d.commandMu.Lock()
	defer d.commandMu.Unlock()

	select {
	case <-d.closed:
		return "", ErrDriverClosed
	default:
	}

	pending := &pendingCommand{done: make(chan commandResult, 1)}
	d.mu.Lock()
	d.pending = pending
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.pending = nil
		d.mu.Unlock()
	}()

	if _, err := d.port.Write([]byte(cmd + "\r")); err != nil {
		return "", errors.Wrapf(err, "write command %q", cmd)
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-pending.done:
		if result.err != nil {
			return "", errors.Wrapf(result.err, "command %q", cmd)
		}

		return result.response, nil
	case <-timer.C:
		return "", errors.Wrapf(ErrCommandTimeout, "command %q after %s", cmd, timeout)
	case <-ctx.Done():
		return "", errors.WithStack(ctx.Err())
	case <-d.closed:
		return "", ErrDriverClosed
	}
}

func (d *serialDriver) ReadNotification(ctx context.Context) (string, error) {
	select {
	case line := <-d.notifications:
		return line, nil
	case <-ctx.Done():
		return "", errors.WithStack(ctx.Err())
	case <-d.closed:
		return "", ErrDriverClosed
	}
}

func (d *serialDriver) GetTelemetry(ctx context.Context) (entity.Telemetry, error) {
	var telemetry entity.Telemetry

	signalResp, err := d.SendCommand(ctx, CmdSignalQuality, serialTelemetryTimeout)
	if err != nil {
		return telemetry, err
	}
	if telemetry.SignalQuality, err = ParseCSQ(signalResp); err != nil {
		return telemetry, err
	}

	// Identity fields are best effort; a SIM without CNUM support still works.
	if resp, err := d.SendCommand(ctx, CmdOperator, serialTelemetryTimeout); err == nil {
		if operator, parseErr := ParseCOPS(resp); parseErr == nil {
			telemetry.Operator = operator
		}
	}
	if resp, err := d.SendCommand(ctx, CmdICCID, serialTelemetryTimeout); err == nil {
		if iccid, parseErr := ParseCCID(resp); parseErr == nil {
			telemetry.ICCID = iccid
		}
	}
	if resp, err := d.SendCommand(ctx, CmdIMEI, serialTelemetryTimeout); err == nil {
		if imei, parseErr := ParseIMEI(resp); parseErr == nil {
			telemetry.IMEI = imei
		}
	}
	if resp, err := d.SendCommand(ctx, CmdOwnNumber, serialTelemetryTimeout); err == nil {
		if number, parseErr := ParseCNUM(resp); parseErr == nil {
			telemetry.PhoneNumber = number
		}
	}

	return telemetry, nil
}

const serialTelemetryTimeout = 5 * time.Second

func (d *serialDriver) Close() error {
	var err error
	d.closeOnce.Do(func() {
		close(d.closed)
		err = d.port.Close()
	})

	return err
}

// dispatchLoop owns every read from the port. Lines are routed to the
// in-flight command, or to the notification channel when unsolicited.
func (d *serialDriver) dispatchLoop() {
	buf := make([]byte, 256)
	var lineBuf strings.Builder

	for {
		select {
		case <-d.closed:
			return
		default:
		}

		n, err := d.port.Read(buf)
		if err != nil && err != io.EOF {
			select {
			case <-d.closed:
			default:
				d.logger.Warn("serial read failed", slog.Any("error", err))
				d.failPending(errors.Wrap(err, "serial read"))
			}

			return
		}

		for _, b := range buf[:n] {
			if b != '\r' && b != '\n' {
				lineBuf.WriteByte(b)

				continue
			}

			line := strings.TrimSpace(lineBuf.String())
			lineBuf.Reset()
			if line != "" {
				d.dispatchLine(line)
			}
		}
	}
}

func (d *serialDriver) dispatchLine(line string) {
	if strings.HasPrefix(line, "+CMTI:") {
		select {
		case d.notifications <- line:
		default:
			d.logger.Warn("notification buffer full, dropping", slog.String("line", line))
		}

		return
	}

	d.mu.Lock()
	pending := d.pending
	d.mu.Unlock()

	if pending == nil {
		// Unsolicited noise outside a command window.
		d.logger.Debug("dropping stray modem line", slog.String("line", line))

		return
	}

	switch {
	case line == "OK":
		d.complete(pending, commandResult{response: strings.Join(pending.lines, "\n")})
	case line == "ERROR" || strings.HasPrefix(line, "+CME ERROR") || strings.HasPrefix(line, "+CMS ERROR"):
		d.complete(pending, commandResult{err: fmt.Errorf("%w: %s", ErrCommandFailed, line)})
	default:
		pending.lines = append(pending.lines, line)
	}
}

func (d *serialDriver) complete(pending *pendingCommand, result commandResult) {
	d.mu.Lock()
	if d.pending == pending {
		d.pending = nil
	}
	d.mu.Unlock()

	select {
	case pending.done <- result:
	default:
	}
}

func (d *serialDriver) failPending(err error) {
	d.mu.Lock()
	pending := d.pending
	d.pending = nil
	d.mu.Unlock()

	if pending != nil {
		select {
		case pending.done <- commandResult{err: err}:
		default:
		}
	}
}
