package kitchenriders

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSession struct {
	mock.Mock
}

func (m *mockSession) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp091.Publishing,
) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func (m *mockSession) IsClosed() bool {
	return m.Called().Bool(0)
}

func (m *mockSession) Close() error {
	return m.Called().Error(0)
}

// dialer hands out the given sessions in order and counts the dials.
type dialer struct {
	sessions []session
	errs     []error
	calls    int
}

func (d *dialer) dial(url, exchange string) (session, error) {
	i := d.calls
	d.calls++
	if i < len(d.errs) && d.errs[i] != nil {
		return nil, d.errs[i]
	}
	return d.sessions[i], nil
}

func newTestConnection(d *dialer, current session) *Connection {
	c := newConnection("amqp://localhost", "kitchenpos.delivery", d.dial, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.session = current
	return c
}

func TestConnection_PublishWithContext_UsesOpenSession(t *testing.T) {
	ctx := context.Background()
	open := new(mockSession)
	open.On("IsClosed").Return(false)
	open.On("PublishWithContext", ctx, "kitchenpos.delivery", "delivery.requested", false, false, mock.Anything).Return(nil).Once()

	d := &dialer{}
	c := newTestConnection(d, open)

	require.NoError(t, c.PublishWithContext(ctx, "kitchenpos.delivery", "delivery.requested", false, false, amqp091.Publishing{}))
	assert.Equal(t, 0, d.calls)
	open.AssertExpectations(t)
}

func TestConnection_PublishWithContext_ReconnectsAfterBrokerDrop(t *testing.T) {
	ctx := context.Background()
	dropped := new(mockSession)
	dropped.On("IsClosed").Return(true)
	dropped.On("Close").Return(nil).Once()

	fresh := new(mockSession)
	fresh.On("IsClosed").Return(false)
	fresh.On("PublishWithContext", ctx, "kitchenpos.delivery", "delivery.requested", false, false, mock.Anything).Return(nil).Twice()

	d := &dialer{sessions: []session{fresh}}
	c := newTestConnection(d, dropped)

	for range 2 {
		require.NoError(t, c.PublishWithContext(ctx, "kitchenpos.delivery", "delivery.requested", false, false, amqp091.Publishing{}))
	}

	assert.Equal(t, 1, d.calls)
	dropped.AssertExpectations(t)
	fresh.AssertExpectations(t)
	dropped.AssertNotCalled(t, "PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConnection_PublishWithContext_RetriesDialOnNextPublish(t *testing.T) {
	ctx := context.Background()
	brokerDown := errors.New("connection refused")

	fresh := new(mockSession)
	fresh.On("IsClosed").Return(false)
	fresh.On("PublishWithContext", ctx, "kitchenpos.delivery", "delivery.requested", false, false, mock.Anything).Return(nil).Once()

	d := &dialer{sessions: []session{nil, fresh}, errs: []error{brokerDown, nil}}
	c := newTestConnection(d, nil)

	err := c.PublishWithContext(ctx, "kitchenpos.delivery", "delivery.requested", false, false, amqp091.Publishing{})
	require.ErrorIs(t, err, brokerDown)
	assert.Contains(t, err.Error(), "reconnect to rabbitmq")

	require.NoError(t, c.PublishWithContext(ctx, "kitchenpos.delivery", "delivery.requested", false, false, amqp091.Publishing{}))
	assert.Equal(t, 2, d.calls)
	fresh.AssertExpectations(t)
}

func TestConnection_Close(t *testing.T) {
	s := new(mockSession)
	s.On("Close").Return(nil).Once()

	c := newTestConnection(&dialer{}, s)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	s.AssertExpectations(t)
}
