package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pranav244872/jobboard/token"
	"go.uber.org/zap"
)

////////////////////////////////////////////////////////////////////////
// Constants used in middleware
////////////////////////////////////////////////////////////////////////

const (
	authorizationHeaderKey  = "authorization"         // HTTP header where token is expected
	authorizationTypeBearer = "bearer"                // Authorization type: Bearer <token>
	authorizationPayloadKey = "authorization_payload" // Context key for storing the token payload

	requestIDHeaderKey = "X-Request-ID"
	requestIDKey       = "request_id"
)

////////////////////////////////////////////////////////////////////////
// Middleware to authenticate JWTs
////////////////////////////////////////////////////////////////////////

// authMiddleware checks for a valid JWT token in the "Authorization" header.
// If valid, it stores the decoded payload in Gin's context for use in handlers.
// If invalid or missing, it blocks access with a 401 Unauthorized.
func authMiddleware(tokenMaker *token.JWTMaker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		// 1. Get the value of the Authorization header
		authorizationHeader := ctx.GetHeader(authorizationHeaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 2. The expected format is: "Bearer <token>"
		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 3. Check that the type is "Bearer" (case-insensitive)
		authType := strings.ToLower(fields[0])
		if authType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 4. Validate the JWT token
		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse(err))
			return
		}

		// 5. Save the payload for the handlers and continue
		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// getAuthorizationPayload returns the token payload stored by authMiddleware.
func getAuthorizationPayload(ctx *gin.Context) (*token.Payload, error) {
	payload, exists := ctx.Get(authorizationPayloadKey)
	if !exists {
		return nil, errors.New("authorization payload not found")
	}

	authPayload, ok := payload.(*token.Payload)
	if !ok {
		return nil, errors.New("invalid authorization payload type")
	}

	return authPayload, nil
}

////////////////////////////////////////////////////////////////////////
// Request ID and access log
////////////////////////////////////////////////////////////////////////

// requestIDMiddleware reuses the caller's X-Request-ID or generates one.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(requestIDHeaderKey)
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Set(requestIDKey, rid)
		ctx.Header(requestIDHeaderKey, rid)
		ctx.Next()
	}
}

// loggerMiddleware writes one line per request once the handler has finished.
func loggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		fields := []zap.Field{
			zap.String("rid", ctx.GetString(requestIDKey)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Int("status", ctx.Writer.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.Int("size", ctx.Writer.Size()),
		}
		if len(ctx.Errors) > 0 {
			fields = append(fields, zap.String("errors", ctx.Errors.String()))
		}

		switch status := ctx.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			logger.Error("http", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("http", fields...)
		default:
			logger.Info("http", fields...)
		}
	}
}
