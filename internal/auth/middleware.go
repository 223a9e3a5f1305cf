package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const principalKey = "auth.principal"

// Middleware resolves the bearer token into a Principal once per request.
type Middleware struct {
	tokens        TokenService
	userRepo      repository.UserRepository
	candidateRepo repository.CandidateRepository
	staffRepo     repository.StaffRepository
}

func NewMiddleware(tokens TokenService, userRepo repository.UserRepository, candidateRepo repository.CandidateRepository, staffRepo repository.StaffRepository) *Middleware {
	return &Middleware{
		tokens:        tokens,
		userRepo:      userRepo,
		candidateRepo: candidateRepo,
		staffRepo:     staffRepo,
	}
}

// GetPrincipal returns the Principal Authenticate stored on the context.
func GetPrincipal(c *gin.Context) *Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	return v.(*Principal)
}

// Authenticate rejects requests without a valid access token and attaches
// the resolved Principal to the context.
func (m *Middleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Authentication credentials were not provided."})
			return
		}

		claims, err := m.tokens.VerifyAccess(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired."})
			return
		}

		user, err := m.userRepo.FindByID(claims.UserID)
		if err != nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Token is invalid or expired."})
			return
		}

		principal := &Principal{User: user}
		if candidate, err := m.candidateRepo.FindByUserID(user.ID); err == nil {
			principal.Candidate = candidate
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to resolve candidate profile")
		}
		if staff, err := m.staffRepo.FindByUserID(user.ID); err == nil {
			principal.Staff = staff
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Uint("userID", user.ID).Msg("Failed to resolve staff profile")
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func (m *Middleware) RequireCandidate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := GetPrincipal(c); p == nil || !p.IsCandidate() {
			forbidden(c)
			return
		}
		c.Next()
	}
}

func (m *Middleware) RequireStaff(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := GetPrincipal(c)
		if p == nil || !p.IsStaff() {
			forbidden(c)
			return
		}
		if len(roles) > 0 && !p.HasStaffRole(roles...) {
			forbidden(c)
			return
		}
		c.Next()
	}
}

func (m *Middleware) RequireLeagueCandidateOrStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := GetPrincipal(c); p == nil || !p.IsLeagueCandidateOrStaff() {
			forbidden(c)
			return
		}
		c.Next()
	}
}

// RequireCandidateOrStaff admits any active profile, used for shared reads.
func (m *Middleware) RequireCandidateOrStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if p := GetPrincipal(c); p == nil || (!p.IsCandidate() && !p.IsStaff()) {
			forbidden(c)
			return
		}
		c.Next()
	}
}

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Not allowed."})
}
