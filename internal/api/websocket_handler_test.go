package api

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/mocks"
	contextutils "github.com/kingrain94/pitchcraft-api/internal/utils"
	"github.com/kingrain94/pitchcraft-api/pkg/logger"
)

func TestWebSocketHandler_RelaysOwnerChunks(t *testing.T) {
	gin.SetMode(gin.TestMode)

	subscriber := new(mocks.ChunkSubscriber)
	callbacks := make(chan func(*domain.PitchChunk), 1)
	subscriber.On("Subscribe", mock.Anything, "user1", mock.Anything).Run(func(args mock.Arguments) {
		callbacks <- args.Get(2).(func(*domain.PitchChunk))
	}).Return(nil).Once()
	subscriber.On("Unsubscribe", "user1").Return().Maybe()
	subscriber.On("Close").Return().Maybe()

	handler := NewWebSocketHandler(logger.NewNopLogger(), subscriber)
	go handler.Start()
	defer handler.Stop()

	router := gin.New()
	router.GET("/pitches/stream", func(c *gin.Context) {
		c.Set(string(contextutils.OwnerIDKey), c.Query("owner"))
	}, handler.HandleWebSocket)
	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/pitches/stream?owner=user1"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	var callback func(*domain.PitchChunk)
	select {
	case callback = <-callbacks:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was not created")
	}
	assert.Equal(t, 1, handler.ConnectedClients("user1"))

	callback(&domain.PitchChunk{OwnerID: "someone-else", Seq: 1, Text: "not yours"})
	callback(&domain.PitchChunk{OwnerID: "user1", RequestID: "req-1", Seq: 1, Text: "Hello "})
	callback(&domain.PitchChunk{OwnerID: "user1", RequestID: "req-1", Seq: 2, Done: true})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var first, second domain.PitchChunk
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))

	assert.Equal(t, "Hello ", first.Text)
	assert.Equal(t, "req-1", first.RequestID)
	assert.True(t, second.Done)
}

func TestWebSocketHandler_SlowSubscribeDoesNotBlockOtherOwners(t *testing.T) {
	gin.SetMode(gin.TestMode)

	release := make(chan struct{})
	subscribed := make(chan string, 2)
	subscriber := new(mocks.ChunkSubscriber)
	subscriber.On("Subscribe", mock.Anything, "slow", mock.Anything).Run(func(mock.Arguments) {
		<-release
	}).Return(nil).Once()
	subscriber.On("Subscribe", mock.Anything, "user2", mock.Anything).Run(func(mock.Arguments) {
		subscribed <- "user2"
	}).Return(nil).Once()
	subscriber.On("Unsubscribe", mock.Anything).Return().Maybe()
	subscriber.On("Close").Return().Maybe()

	handler := NewWebSocketHandler(logger.NewNopLogger(), subscriber)
	go handler.Start()
	defer handler.Stop()
	defer close(release)

	router := gin.New()
	router.GET("/pitches/stream", func(c *gin.Context) {
		c.Set(string(contextutils.OwnerIDKey), c.Query("owner"))
	}, handler.HandleWebSocket)
	server := httptest.NewServer(router)
	defer server.Close()
	base := "ws" + strings.TrimPrefix(server.URL, "http") + "/pitches/stream?owner="

	slowConn, _, err := websocket.DefaultDialer.Dial(base+"slow", nil)
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return handler.ConnectedClients("slow") == 1 }, 2*time.Second, 10*time.Millisecond)

	conn, _, err := websocket.DefaultDialer.Dial(base+"user2", nil)
	require.NoError(t, err)
	defer conn.Close()

	select {
	case owner := <-subscribed:
		assert.Equal(t, "user2", owner)
	case <-time.After(2 * time.Second):
		t.Fatal("second owner was not subscribed while the first subscribe was pending")
	}
	assert.Equal(t, 1, handler.ConnectedClients("user2"))

	// Unregistering must not wait on the pending subscribe either.
	require.NoError(t, slowConn.Close())
	assert.Eventually(t, func() bool { return handler.ConnectedClients("slow") == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestWebSocketHandler_RequiresOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewWebSocketHandler(logger.NewNopLogger(), new(mocks.ChunkSubscriber))

	router := gin.New()
	router.GET("/pitches/stream", handler.HandleWebSocket)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/pitches/stream", nil))
	assert.Equal(t, 401, w.Code)
}
