package transport_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/alanyang/projecthub/internal/domain/event"
	"github.com/alanyang/projecthub/internal/mocks"
	portbus "github.com/alanyang/projecthub/internal/port/eventbus"
	projectsvc "github.com/alanyang/projecthub/internal/service/project"
	"github.com/alanyang/projecthub/internal/transport"
)

// Events published on the project channel must reach WebSocket clients
// connected at /api/ws.
func TestRouter_BridgesProjectEventsToWS(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockProjectRepository(ctrl)
	bus := mocks.NewMockEventBus(ctrl)

	var handler portbus.Handler
	bus.EXPECT().Subscribe(gomock.Any(), event.ChannelProject, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ event.Channel, h portbus.Handler) (portbus.Subscription, error) {
			handler = h
			return nil, nil
		})

	svc := projectsvc.NewService(repo, bus, projectsvc.DefaultConfig)
	r := transport.NewRouter(context.Background(), svc, nil, bus)
	require.NotNil(t, handler)

	srv := httptest.NewServer(r)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/api/ws", nil)
	require.NoError(t, err)
	defer conn.Close()

	e := event.New(event.TypeProjectStateChanged, uuid.New())

	// Re-deliver until the hub has registered the connection; the client
	// reads the first frame that arrives.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				handler(context.Background(), e)
				time.Sleep(20 * time.Millisecond)
			}
		}
	}()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var got event.Event
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, event.TypeProjectStateChanged, got.Type)
	assert.Equal(t, e.EntityID, got.EntityID)
}
