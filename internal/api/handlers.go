package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"kondate/internal/app"
	"kondate/internal/auth"
	"kondate/internal/history"
	"kondate/internal/household"
	"kondate/internal/inventory"
	"kondate/internal/menu"
	"kondate/internal/metrics"
	"kondate/internal/planner"
)

const dateLayout = "2006-01-02"

type handlers struct {
	app    *app.App
	dbPath string
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// fail maps domain errors onto HTTP statuses: invalid input 400, vetoed
// catalog 422, missing entity 404, anything else 500.
func fail(c *gin.Context, err error) {
	c.Error(err)
	switch {
	case planner.IsValidationError(err):
		c.JSON(http.StatusBadRequest, errorBody{Code: "invalid_request", Message: err.Error()})
	case errors.Is(err, planner.ErrNoEligibleRecipe):
		c.JSON(http.StatusUnprocessableEntity, errorBody{Code: "no_eligible_recipe", Message: err.Error()})
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody{Code: "not_found", Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorBody{Code: "internal", Message: "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorBody{Code: "invalid_request", Message: msg})
}

func parseDate(c *gin.Context, value string) (time.Time, bool) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		badRequest(c, "date must use the 2006-01-02 form")
		return time.Time{}, false
	}
	return d, true
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "sys": metrics.GetSysHealth(h.dbPath)})
}

type generatePlanRequest struct {
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

func (h *handlers) generatePlan(c *gin.Context) {
	var req generatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "start_date and end_date are required")
		return
	}
	start, ok := parseDate(c, req.StartDate)
	if !ok {
		return
	}
	end, ok := parseDate(c, req.EndDate)
	if !ok {
		return
	}

	plan, err := h.app.GeneratePlan(c.Request.Context(), auth.UserID(c), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

func (h *handlers) weeklyPlan(c *gin.Context) {
	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		var ok bool
		if date, ok = parseDate(c, raw); !ok {
			return
		}
	}
	plan, err := h.app.WeeklyPlan(c.Request.Context(), auth.UserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *handlers) dayMenu(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"))
	if !ok {
		return
	}
	day, err := h.app.DayMenu(auth.UserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, planner.MenuItem{
		Day:  planner.WeekdayLabel(day.MenuDate),
		Date: day.MenuDate.Format(dateLayout),
		Dish: day.Dish,
		Menu: day.Menu,
	})
}

func (h *handlers) refreshDay(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"))
	if !ok {
		return
	}
	item, err := h.app.RefreshDay(c.Request.Context(), auth.UserID(c), date)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

type swapRequest struct {
	DateA string `json:"date_a" binding:"required"`
	DateB string `json:"date_b" binding:"required"`
}

func (h *handlers) swapDays(c *gin.Context) {
	var req swapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "date_a and date_b are required")
		return
	}
	dateA, ok := parseDate(c, req.DateA)
	if !ok {
		return
	}
	dateB, ok := parseDate(c, req.DateB)
	if !ok {
		return
	}
	if err := h.app.SwapDays(c.Request.Context(), auth.UserID(c), dateA, dateB); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) shoppingList(c *gin.Context) {
	lines, err := h.app.ShoppingList(c.Request.Context(), auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if lines == nil {
		lines = []app.ShoppingLine{}
	}
	c.JSON(http.StatusOK, gin.H{"items": lines})
}

type checkOffRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Checked  *bool  `json:"checked" binding:"required"`
}

func (h *handlers) checkOffItem(c *gin.Context) {
	var req checkOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "item_name and checked are required")
		return
	}
	if err := h.app.CheckOffItem(c.Request.Context(), auth.UserID(c), req.ItemName, *req.Checked); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listInventory(c *gin.Context) {
	items, err := h.app.Inventory(c.Request.Context(), auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if items == nil {
		items = []inventory.Item{}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *handlers) setInventoryItem(c *gin.Context) {
	var item inventory.Item
	if err := c.ShouldBindJSON(&item); err != nil || item.Name == "" {
		badRequest(c, "name, qty and unit are required")
		return
	}
	if err := h.app.SetInventoryItem(c.Request.Context(), auth.UserID(c), item); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) removeInventoryItem(c *gin.Context) {
	name := c.Query("name")
	unit := c.Query("unit")
	if name == "" {
		badRequest(c, "name is required")
		return
	}
	if err := h.app.RemoveInventoryItem(c.Request.Context(), auth.UserID(c), name, unit); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) getSettings(c *gin.Context) {
	s, err := h.app.Settings(c.Request.Context(), auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, errorBody{Code: "not_found", Message: "settings not configured"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *handlers) saveSettings(c *gin.Context) {
	var s household.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		badRequest(c, "invalid settings body")
		return
	}
	if err := h.app.SaveSettings(c.Request.Context(), auth.UserID(c), s); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listFamily(c *gin.Context) {
	members, err := h.app.FamilyMembers(c.Request.Context(), auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	if members == nil {
		members = []household.FamilyMember{}
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *handlers) addFamilyMember(c *gin.Context) {
	var m household.FamilyMember
	if err := c.ShouldBindJSON(&m); err != nil || m.Name == "" {
		badRequest(c, "member name is required")
		return
	}
	m.UserID = auth.UserID(c)
	created, err := h.app.AddFamilyMember(c.Request.Context(), m)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *handlers) updateFamilyMember(c *gin.Context) {
	var m household.FamilyMember
	if err := c.ShouldBindJSON(&m); err != nil {
		badRequest(c, "invalid member body")
		return
	}
	m.ID = c.Param("id")
	m.UserID = auth.UserID(c)
	if err := h.app.UpdateFamilyMember(c.Request.Context(), m); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) removeFamilyMember(c *gin.Context) {
	if err := h.app.RemoveFamilyMember(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listFavorites(c *gin.Context) {
	favs, err := h.app.Favorites(c.Request.Context(), auth.UserID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favs})
}

type favoriteRequest struct {
	Dish        string            `json:"dish_name" binding:"required"`
	Ingredients []menu.Ingredient `json:"ingredients"`
}

func (h *handlers) addFavorite(c *gin.Context) {
	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "dish_name is required")
		return
	}
	if err := h.app.AddFavorite(c.Request.Context(), auth.UserID(c), req.Dish, req.Ingredients); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) removeFavorite(c *gin.Context) {
	if err := h.app.RemoveFavorite(c.Request.Context(), auth.UserID(c), c.Param("dish")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type markCookedRequest struct {
	Dish   string          `json:"dish_name" binding:"required"`
	Date   string          `json:"cooked_date" binding:"required"`
	Rating *history.Rating `json:"rating"`
}

func (h *handlers) markCooked(c *gin.Context) {
	var req markCookedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "dish_name and cooked_date are required")
		return
	}
	date, ok := parseDate(c, req.Date)
	if !ok {
		return
	}
	if err := h.app.MarkCooked(c.Request.Context(), auth.UserID(c), req.Dish, date, req.Rating); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) listHistory(c *gin.Context) {
	userID := auth.UserID(c)
	from, to := c.Query("from"), c.Query("to")

	var (
		records []history.Record
		err     error
	)
	if from != "" && to != "" {
		var fromDate, toDate time.Time
		var ok bool
		if fromDate, ok = parseDate(c, from); !ok {
			return
		}
		if toDate, ok = parseDate(c, to); !ok {
			return
		}
		records, err = h.app.HistoryRange(c.Request.Context(), userID, fromDate, toDate)
	} else {
		records, err = h.app.History(c.Request.Context(), userID)
	}
	if err != nil {
		fail(c, err)
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *handlers) deleteHistory(c *gin.Context) {
	if err := h.app.DeleteHistory(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) generationStats(c *gin.Context) {
	stats, err := h.app.GenerationStats(30)
	if err != nil {
		fail(c, err)
		return
	}
	if stats == nil {
		stats = []metrics.DailyRuns{}
	}
	c.JSON(http.StatusOK, gin.H{"days": stats})
}
