package registry

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simbridge/internal/domain/entity"
)

func newReadyRegistry(t *testing.T, port string) *Registry {
	t.Helper()

	reg := New()
	reg.Register(port, "russia", "mts")
	require.NoError(t, reg.UpdateTelemetry(port, entity.Telemetry{
		SignalQuality: 80,
		PhoneNumber:   "+79161234567",
	}))
	require.NoError(t, reg.MarkReady(port))

	return reg
}

func TestReserveConcurrentSingleWinner(t *testing.T) {
	reg := newReadyRegistry(t, "/dev/ttyUSB0")

	const contenders = 32

	var wins atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := range contenders {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			<-start
			if err := reg.Reserve("/dev/ttyUSB0", id+1); err == nil {
				wins.Add(1)
			}
		}(int64(i))
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), wins.Load(), "exactly one reservation must win")

	modem, err := reg.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, entity.ModemBusy, modem.State)
	assert.True(t, modem.Bound())
}

func TestReserveRequiresReadyState(t *testing.T) {
	reg := New()
	reg.Register("/dev/ttyUSB0", "russia", "mts")

	err := reg.Reserve("/dev/ttyUSB0", 1)
	assert.ErrorIs(t, err, ErrModemNotReady)

	err = reg.Reserve("/dev/ttyUSB9", 1)
	assert.ErrorIs(t, err, ErrModemNotFound)
}

func TestReleaseReturnsModemToPool(t *testing.T) {
	reg := newReadyRegistry(t, "/dev/ttyUSB0")
	require.NoError(t, reg.Reserve("/dev/ttyUSB0", 42))

	binding, err := reg.BindingFor("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, int64(42), binding)

	require.NoError(t, reg.Release("/dev/ttyUSB0"))

	modem, err := reg.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, entity.ModemReady, modem.State)
	assert.False(t, modem.Bound())

	require.NoError(t, reg.Reserve("/dev/ttyUSB0", 43), "released modem is reservable again")
}

func TestReleaseKeepsFaultState(t *testing.T) {
	reg := newReadyRegistry(t, "/dev/ttyUSB0")
	require.NoError(t, reg.Reserve("/dev/ttyUSB0", 42))
	require.NoError(t, reg.MarkError("/dev/ttyUSB0"))

	require.NoError(t, reg.Release("/dev/ttyUSB0"))

	modem, err := reg.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, entity.ModemError, modem.State, "release must not resurrect a faulted modem")
	assert.False(t, modem.Bound())
}

func TestListAvailableFilters(t *testing.T) {
	reg := New()

	reg.Register("/dev/ttyUSB0", "russia", "mts")
	require.NoError(t, reg.UpdateTelemetry("/dev/ttyUSB0", entity.Telemetry{PhoneNumber: "+79161111111"}))
	require.NoError(t, reg.MarkReady("/dev/ttyUSB0"))

	reg.Register("/dev/ttyUSB1", "russia", "beeline")
	require.NoError(t, reg.UpdateTelemetry("/dev/ttyUSB1", entity.Telemetry{PhoneNumber: "+79162222222"}))
	require.NoError(t, reg.MarkReady("/dev/ttyUSB1"))

	// No phone number yet, must never be handed out.
	reg.Register("/dev/ttyUSB2", "russia", "mts")
	require.NoError(t, reg.MarkReady("/dev/ttyUSB2"))

	// Busy modem stays out of the pool.
	reg.Register("/dev/ttyUSB3", "russia", "mts")
	require.NoError(t, reg.UpdateTelemetry("/dev/ttyUSB3", entity.Telemetry{PhoneNumber: "+79163333333"}))
	require.NoError(t, reg.MarkReady("/dev/ttyUSB3"))
	require.NoError(t, reg.Reserve("/dev/ttyUSB3", 7))

	all := reg.ListAvailable("", "")
	assert.Len(t, all, 2)

	mts := reg.ListAvailable("russia", "mts")
	require.Len(t, mts, 1)
	assert.Equal(t, "/dev/ttyUSB0", mts[0].Port)

	assert.Empty(t, reg.ListAvailable("usa", ""))
}

func TestUpdateTelemetryKeepsKnownIdentity(t *testing.T) {
	reg := newReadyRegistry(t, "/dev/ttyUSB0")

	// A partial refresh must not erase identity learned earlier.
	require.NoError(t, reg.UpdateTelemetry("/dev/ttyUSB0", entity.Telemetry{SignalQuality: 10}))

	modem, err := reg.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, 10, modem.SignalQuality)
	assert.Equal(t, "+79161234567", modem.PhoneNumber)
}

func TestSnapshotReturnsCopies(t *testing.T) {
	reg := newReadyRegistry(t, "/dev/ttyUSB0")

	snapshot := reg.Snapshot()
	require.Len(t, snapshot, 1)
	snapshot[0].State = entity.ModemOffline

	modem, err := reg.Get("/dev/ttyUSB0")
	require.NoError(t, err)
	assert.Equal(t, entity.ModemReady, modem.State)
}
