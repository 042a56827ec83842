package affiliate

//go:generate mockgen -source=referral.go -destination=mock_referral.go -package=affiliate

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/D1yWeb/S2C/internal/domain"
)

const (
	ReferralCookie = "affiliate_ref"
	ReferralParam  = "ref"

	referralCookieTTL = 30 * 24 * time.Hour
	unknown           = "unknown"
)

type ClickTracker interface {
	Track(code string, meta domain.ClickMeta) bool
}

// Referral stores the ?ref= code in a cookie and hands the click to tracker
// without waiting for it. Requests to a path in untracked still get the cookie
// but are left for their own handler to record.
func Referral(tracker ClickTracker, untracked ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(untracked))
	for _, path := range untracked {
		skip[path] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := strings.TrimSpace(r.URL.Query().Get(ReferralParam))
			if code != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     ReferralCookie,
					Value:    code,
					Path:     "/",
					MaxAge:   int(referralCookieTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
				if _, ok := skip[r.URL.Path]; !ok {
					tracker.Track(code, ClickMetaFromRequest(r))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ReferralCode returns the code stored by Referral, if any.
func ReferralCode(r *http.Request) string {
	cookie, err := r.Cookie(ReferralCookie)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(cookie.Value)
}

// ClickMetaFromRequest expects chi's RealIP to have already resolved
// X-Forwarded-For and X-Real-IP into RemoteAddr.
func ClickMetaFromRequest(r *http.Request) domain.ClickMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	if ip == "" {
		ip = unknown
	}

	userAgent := r.UserAgent()
	if userAgent == "" {
		userAgent = unknown
	}

	referrer := r.Referer()
	if referrer == "" {
		referrer = requestURL(r)
	}

	return domain.ClickMeta{
		IPAddress: ip,
		UserAgent: userAgent,
		Referrer:  referrer,
	}
}

func requestURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
