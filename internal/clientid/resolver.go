package clientid

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/hearthero/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	CookieName       = "hearthero_session"
	sessionKeyPrefix = "hearthero-client-session||"

	DefaultTTL = 30 * 24 * time.Hour
)

// Resolver produces a stable client identifier for each request. Callers
// with a usable network address get "ip_<addr>"; local or unidentifiable
// callers get a redis-backed "session_<token>" identifier delivered via
// cookie, so repeated requests from the same browser map to the same
// profile and metric records.
type Resolver struct {
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewResolver(redisClient *redis.Client, ttl time.Duration) *Resolver {
	return &Resolver{
		redisClient:    redisClient,
		ttl:            ttl,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func (res *Resolver) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error) {
	rawAddr := r.Header.Get("X-Real-Ip")
	if rawAddr == "" {
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			rawAddr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	if rawAddr == "" {
		rawAddr = r.RemoteAddr
	}

	if !pkg.IPIsLocal(rawAddr) {
		if ip, err := pkg.ReadUserIP(r); err == nil {
			return "ip_" + ip, nil
		} else {
			log.Tracef("read user ip for [%s]: %s, falling back to session id", rawAddr, err)
		}
	}

	return res.resolveSession(ctx, w, r)
}

func (res *Resolver) resolveSession(ctx context.Context, w http.ResponseWriter, r *http.Request) (string, error) {
	if cookie, err := r.Cookie(CookieName); err == nil && cookie.Value != "" {
		existsCmd := res.redisClient.Exists(ctx, sessionKeyPrefix+cookie.Value)
		if err := existsCmd.Err(); err != nil {
			return "", fmt.Errorf("check session: %w", err)
		}
		if existsCmd.Val() > 0 {
			if err := res.redisClient.Expire(ctx, sessionKeyPrefix+cookie.Value, res.ttl).Err(); err != nil {
				log.Warnf("refresh session ttl for %s: %s", cookie.Value, err)
			}
			return cookie.Value, nil
		}
	}

	token, err := res.RandStringFunc(25)
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	sessionID := "session_" + token
	setCmd := res.redisClient.Set(ctx, sessionKeyPrefix+sessionID, time.Now().Unix(), res.ttl)
	if err := setCmd.Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(res.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return sessionID, nil
}
