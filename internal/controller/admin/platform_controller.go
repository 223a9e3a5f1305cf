package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/auth"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/controller"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/model"
	"github.com/joseph-ezekiel/verboheit-mlc/internal/service"
)

// PlatformController covers platform switches, leaderboard publishing and
// the staff dashboard.
type PlatformController struct {
	flagSvc        service.FlagService
	leaderboardSvc service.LeaderboardService
	dashboardSvc   service.DashboardService
}

func NewPlatformController(flagSvc service.FlagService, leaderboardSvc service.LeaderboardService, dashboardSvc service.DashboardService) *PlatformController {
	return &PlatformController{
		flagSvc:        flagSvc,
		leaderboardSvc: leaderboardSvc,
		dashboardSvc:   dashboardSvc,
	}
}

// ToggleCandidateRegistration godoc
// @Summary (Staff) Toggle candidate registration on or off
// @Tags Staff - Platform
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /toggle-candidate-registration [post]
// @Security BearerAuth
func (ctrl *PlatformController) ToggleCandidateRegistration(c *gin.Context) {
	ctrl.toggle(c, model.FlagCandidateRegistrationOpen, "candidate_registration_open")
}

// ToggleStaffRegistration godoc
// @Summary (Owner) Toggle staff registration on or off
// @Tags Staff - Platform
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /toggle-staff-registration [post]
// @Security BearerAuth
func (ctrl *PlatformController) ToggleStaffRegistration(c *gin.Context) {
	ctrl.toggle(c, model.FlagStaffRegistrationOpen, "staff_registration_open")
}

// ToggleLeaderboard godoc
// @Summary (Staff) Toggle leaderboard visibility on or off
// @Tags Staff - Platform
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /toggle-leaderboard [post]
// @Security BearerAuth
func (ctrl *PlatformController) ToggleLeaderboard(c *gin.Context) {
	ctrl.toggle(c, model.FlagLeaderboardOpen, "leaderboard_open")
}

func (ctrl *PlatformController) toggle(c *gin.Context, key, field string) {
	value, err := ctrl.flagSvc.Toggle(key, true)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{field: value})
}

// PublishLeaderboard godoc
// @Summary (Staff) Publish the current league standings
// @Description Freezes league totals into an immutable snapshot for candidates to load.
// @Tags Staff - Platform
// @Produce json
// @Success 200 {object} dto.LeaderboardPublishDTO
// @Router /leaderboard/publish [post]
// @Security BearerAuth
func (ctrl *PlatformController) PublishLeaderboard(c *gin.Context) {
	principal := auth.GetPrincipal(c)
	result, err := ctrl.leaderboardSvc.Publish(principal.Staff.ID)
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// StaffDashboard godoc
// @Summary (Staff) Platform-wide counters and recent activity
// @Tags Staff - Platform
// @Produce json
// @Success 200 {object} dto.StaffDashboardDTO
// @Router /dashboard/staff [get]
// @Security BearerAuth
func (ctrl *PlatformController) StaffDashboard(c *gin.Context) {
	dashboard, err := ctrl.dashboardSvc.StaffDashboard()
	if err != nil {
		controller.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
