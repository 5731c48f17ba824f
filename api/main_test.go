package api

import (
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/jobboard/config"
	db "github.com/pranav244872/jobboard/db/sqlc"
	"github.com/pranav244872/jobboard/util"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// newTestServer builds a Server around store with a fixed clock.
func newTestServer(t *testing.T, store db.Store, now time.Time) *Server {
	cfg := config.Config{
		TokenSymmetricKey: util.RandomString(32),
		AlertWindow:       24 * time.Hour,
	}

	server, err := NewServer(cfg, store, zap.NewNop())
	require.NoError(t, err)

	server.now = func() time.Time { return now }
	return server
}
