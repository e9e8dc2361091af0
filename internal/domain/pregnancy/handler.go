package pregnancy

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/gestation"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/internal/domain/triage"
	"github.com/dbabeam/Pregnancy-Mobile-App-sub000/pkg/pagination"
)

var validate = newValidator()

// phonePattern accepts dialable numbers such as "911" or "+1 (555) 010-2030".
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]*[0-9]$`)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type Handler struct {
	svc       *Service
	validator *validator.Validate
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc, validator: validate}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/symptoms", h.ListSymptoms)
	api.POST("/gestation", h.Assess)
	api.POST("/triage", h.Triage)
	api.GET("/guide/:week", h.Guide)

	api.GET("/profiles", h.ListProfiles)
	api.POST("/profiles", h.CreateProfile)
	api.GET("/profiles/:id", h.GetProfile)
	api.PUT("/profiles/:id", h.UpdateProfile)
	api.DELETE("/profiles/:id", h.DeleteProfile)
	api.POST("/profiles/:id/setup", h.CompleteSetup)
	api.GET("/profiles/:id/gestation", h.AssessProfile)
	api.POST("/profiles/:id/triage", h.TriageProfile)

	api.GET("/profiles/:id/contacts", h.ListContacts)
	api.POST("/profiles/:id/contacts", h.AddContact)
	api.PUT("/profiles/:id/contacts/:contactId", h.UpdateContact)
	api.DELETE("/profiles/:id/contacts/:contactId", h.DeleteContact)
}

// -- Requests --

type gestationRequest struct {
	LMP  string `json:"lmp" validate:"omitempty,datetime=2006-01-02"`
	AsOf string `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

type customSymptomRequest struct {
	ID   string `json:"id" validate:"omitempty,max=64"`
	Name string `json:"name" validate:"required,max=100"`
}

type triageRequest struct {
	SymptomIDs     []int                  `json:"symptom_ids" validate:"max=50"`
	CustomSymptoms []customSymptomRequest `json:"custom_symptoms" validate:"max=20,dive"`
	Trimester      string                 `json:"trimester" validate:"omitempty,max=32" trim:"false"`
	LMP            string                 `json:"lmp" validate:"omitempty,datetime=2006-01-02"`
	AsOf           string                 `json:"as_of" validate:"omitempty,datetime=2006-01-02"`
}

// profileTriageRequest carries only the selection; the trimester comes from
// the stored LMP and the reference date from the as_of query parameter.
type profileTriageRequest struct {
	SymptomIDs     []int                  `json:"symptom_ids" validate:"max=50"`
	CustomSymptoms []customSymptomRequest `json:"custom_symptoms" validate:"max=20,dive"`
}

func customSymptoms(reqs []customSymptomRequest) []triage.CustomSymptom {
	out := make([]triage.CustomSymptom, 0, len(reqs))
	for _, cs := range reqs {
		out = append(out, triage.CustomSymptom{ID: cs.ID, Name: cs.Name})
	}
	return out
}

type profileRequest struct {
	FirstName           string `json:"first_name" validate:"required,max=100"`
	LastName            string `json:"last_name" validate:"required,max=100"`
	Email               string `json:"email" validate:"omitempty,email,max=255"`
	DateOfBirth         string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	LastMenstrualPeriod string `json:"last_menstrual_period" validate:"omitempty,datetime=2006-01-02"`
}

func (r *profileRequest) profile() (*Profile, error) {
	p := &Profile{FirstName: r.FirstName, LastName: r.LastName}
	if r.Email != "" {
		email := r.Email
		p.Email = &email
	}
	var err error
	if p.DateOfBirth, err = ParseOptionalDate(r.DateOfBirth); err != nil {
		return nil, err
	}
	if p.LastMenstrualPeriod, err = ParseOptionalDate(r.LastMenstrualPeriod); err != nil {
		return nil, err
	}
	return p, nil
}

type contactRequest struct {
	Name         string `json:"contact_name" validate:"required,max=100"`
	Phone        string `json:"contact_phone" validate:"required,max=32,phone"`
	Relationship string `json:"contact_relationship" validate:"omitempty,max=50"`
}

func (r *contactRequest) contact() *EmergencyContact {
	return &EmergencyContact{Name: r.Name, Phone: r.Phone, Relationship: r.Relationship}
}

type setupRequest struct {
	LastMenstrualPeriod string `json:"last_menstrual_period" validate:"required,datetime=2006-01-02"`
}

// bind decodes and validates req. Strings are trimmed before validation so
// "   " fails a required check. Fields tagged trim:"false" are passed through
// untouched.
func (h *Handler) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	trimStrings(reflect.ValueOf(req))
	if err := h.validator.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Validation error: "+err.Error())
	}
	return nil
}

func trimStrings(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr:
		if !v.IsNil() {
			trimStrings(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			if f.IsExported() && f.Tag.Get("trim") != "false" {
				trimStrings(v.Field(i))
			}
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			trimStrings(v.Index(i))
		}
	case reflect.String:
		if v.CanSet() {
			v.SetString(strings.TrimSpace(v.String()))
		}
	}
}

func httpError(err error) error {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	case errors.Is(err, ErrContactNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "emergency contact not found")
	case errors.Is(err, ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
}

func profileID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func contactIDs(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	pid, err := profileID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	cid, err := uuid.Parse(c.Param("contactId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid contact id")
	}
	return pid, cid, nil
}

// -- Stateless handlers --

func (h *Handler) ListSymptoms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Symptoms())
}

func (h *Handler) Assess(c echo.Context) error {
	var req gestationRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	lmp, err := ParseOptionalDate(req.LMP)
	if err != nil {
		return httpError(err)
	}
	asOf, err := ParseOptionalDate(req.AsOf)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, h.svc.Assess(lmp, asOf))
}

// Triage uses the trimester label when given, otherwise derives one from lmp.
func (h *Handler) Triage(c echo.Context) error {
	var req triageRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	if req.Trimester != "" || req.LMP == "" {
		return c.JSON(http.StatusOK, h.svc.Triage(req.SymptomIDs, customSymptoms(req.CustomSymptoms), req.Trimester))
	}
	lmp, err := ParseOptionalDate(req.LMP)
	if err != nil {
		return httpError(err)
	}
	asOf, err := ParseOptionalDate(req.AsOf)
	if err != nil {
		return httpError(err)
	}
	_, report := h.svc.TriageForLMP(lmp, asOf, req.SymptomIDs, customSymptoms(req.CustomSymptoms))
	return c.JSON(http.StatusOK, report)
}

// Guide returns the tracker summary for a gestational week.
func (h *Handler) Guide(c echo.Context) error {
	week, err := strconv.Atoi(c.Param("week"))
	if err != nil || week < 0 || week > MaxGuideWeek {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("week must be an integer between 0 and %d", MaxGuideWeek))
	}
	return c.JSON(http.StatusOK, gestation.Guide(week))
}

// -- Profile handlers --

func (h *Handler) CreateProfile(c echo.Context) error {
	var req profileRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	p, err := req.profile()
	if err != nil {
		return httpError(err)
	}
	if err := h.svc.CreateProfile(c.Request().Context(), p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) GetProfile(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListProfiles(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListProfiles(c.Request().Context(), pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	var req profileRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	p, err := req.profile()
	if err != nil {
		return httpError(err)
	}
	p.ID = id
	if err := h.svc.UpdateProfile(c.Request().Context(), p); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProfile(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteProfile(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) CompleteSetup(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	var req setupRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	lmp, err := ParseDate(req.LastMenstrualPeriod)
	if err != nil {
		return httpError(err)
	}
	p, err := h.svc.CompleteSetup(c.Request().Context(), id, lmp)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) AssessProfile(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	asOf, err := ParseOptionalDate(c.QueryParam("as_of"))
	if err != nil {
		return httpError(err)
	}
	a, err := h.svc.AssessProfile(c.Request().Context(), id, asOf)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) TriageProfile(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	asOf, err := ParseOptionalDate(c.QueryParam("as_of"))
	if err != nil {
		return httpError(err)
	}
	var req profileTriageRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	out, err := h.svc.TriageProfile(c.Request().Context(), id, asOf, req.SymptomIDs, customSymptoms(req.CustomSymptoms))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, out)
}

// -- Emergency contact handlers --

func (h *Handler) ListContacts(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListContacts(c.Request().Context(), id, pg.Limit, pg.Offset)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) AddContact(c echo.Context) error {
	id, err := profileID(c)
	if err != nil {
		return err
	}
	var req contactRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	contact := req.contact()
	if err := h.svc.AddContact(c.Request().Context(), id, contact); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, contact)
}

func (h *Handler) UpdateContact(c echo.Context) error {
	pid, cid, err := contactIDs(c)
	if err != nil {
		return err
	}
	var req contactRequest
	if err := h.bind(c, &req); err != nil {
		return err
	}
	contact := req.contact()
	contact.ID = cid
	if err := h.svc.UpdateContact(c.Request().Context(), pid, contact); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, contact)
}

func (h *Handler) DeleteContact(c echo.Context) error {
	pid, cid, err := contactIDs(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteContact(c.Request().Context(), pid, cid); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
