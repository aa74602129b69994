package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingClient struct {
	req    DispatchRequest
	result DispatchResult
	err    error
}

func (c *recordingClient) Dispatch(_ context.Context, req DispatchRequest) (DispatchResult, error) {
	c.req = req
	return c.result, c.err
}

func TestNotifierWithoutClientLogsAndSucceeds(t *testing.T) {
	n := NewEmergencyNotifier(nil)
	res, err := n.NotifyAuthorities(context.Background(), DispatchRequest{
		UserID: 7, Country: "PK", RiskLevel: "high", EmergencyNumber: "15",
	})
	require.NoError(t, err)
	assert.Equal(t, "logged", res.Status)
	assert.Equal(t, []string{"internal_logging"}, res.NotifiedServices)
}

func TestNotifierDelegatesToClient(t *testing.T) {
	cli := &recordingClient{result: DispatchResult{Status: "dispatched", NotifiedServices: []string{"sms_gateway"}}}
	n := NewEmergencyNotifier(cli)
	res, err := n.NotifyAuthorities(context.Background(), DispatchRequest{UserID: 3, Country: "US"})
	require.NoError(t, err)
	assert.Equal(t, "dispatched", res.Status)
	assert.Equal(t, uint(3), cli.req.UserID)
}

func TestNotifierPropagatesClientError(t *testing.T) {
	cli := &recordingClient{err: errors.New("gateway down")}
	n := NewEmergencyNotifier(cli)
	_, err := n.NotifyAuthorities(context.Background(), DispatchRequest{})
	assert.Error(t, err)
}
