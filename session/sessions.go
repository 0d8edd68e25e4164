package session

import (
	"time"

	"caseflow/bizerror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const TokenExpiration = 24 * time.Hour

var TokenCache = cache.New(TokenExpiration, 1*time.Minute)

const KeySecCtx = "SecCtx"
const KeySecToken = "sec_token"

// Sign registers a session for the given identity and returns its token.
// The identity and role set are supplied by the external identity provider;
// this cache is only the in-process view of it.
func Sign(identity Identity, perms []string) *Context {
	secCtx := &Context{
		Token:       uuid.New().String(),
		Identity:    identity,
		Perms:       perms,
		SigningTime: time.Now(),
	}
	TokenCache.Set(secCtx.Token, secCtx, TokenExpiration)
	return secCtx
}

// ExtractSessionFromGinContext returns a clone of the authenticated session
// bound to the request's trace context, or an anonymous session when the
// auth filter did not run.
func ExtractSessionFromGinContext(ctx *gin.Context) *Context {
	s0 := FindSecurityContext(ctx)
	if s0 == nil {
		return &Context{Context: ctx.Request.Context()}
	}
	s := s0.Clone()
	s.Context = ctx.Request.Context()
	return &s
}

// FindSecurityContext returns the session the auth filter bound to the
// request, or nil when the request is anonymous.
func FindSecurityContext(ctx *gin.Context) *Context {
	value, found := ctx.Get(KeySecCtx)
	if !found {
		return nil
	}
	secCtx, ok := value.(*Context)
	if !ok || secCtx.Token == "" {
		return nil
	}
	return secCtx
}

func SimpleAuthFilter() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(KeySecToken)
		if err != nil {
			panic(bizerror.ErrUnauthenticated)
		}
		securityContextValue, found := TokenCache.Get(token)
		if !found {
			panic(bizerror.ErrUnauthenticated)
		}
		secCtx, ok := securityContextValue.(*Context)
		if !ok {
			panic(bizerror.ErrUnauthenticated)
		}
		SaveSecurityContext(ctx, secCtx)
		ctx.Next()
	}
}

func SaveSecurityContext(ctx *gin.Context, secCtx *Context) {
	if secCtx != nil && secCtx.Token != "" {
		ctx.Set(KeySecCtx, secCtx)
	}
}
