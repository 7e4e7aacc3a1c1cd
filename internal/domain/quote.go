package domain

import (
	"context"
	"regexp"
	"time"
)

// ============================================================================
// Plan
// ============================================================================

// Plan is the product tier chosen before the wizard opens. It determines
// which tools are offered and whether an appointment step exists.
type Plan string

const (
	PlanStarter  Plan = "starter"
	PlanBusiness Plan = "business"
)

// ValidPlans returns all valid plans
func ValidPlans() []Plan {
	return []Plan{PlanStarter, PlanBusiness}
}

// IsValid checks if the plan is valid
func (p Plan) IsValid() bool {
	for _, valid := range ValidPlans() {
		if p == valid {
			return true
		}
	}
	return false
}

// Label maps the plan to its display name
func (p Plan) Label() string {
	if p == PlanBusiness {
		return "Business"
	}
	return "Starter"
}

// ============================================================================
// Tool catalog
// ============================================================================

// ToolKey identifies an integration the client can request.
type ToolKey string

const (
	ToolWhatsApp    ToolKey = "whatsapp"
	ToolSlack       ToolKey = "slack"
	ToolGoogleDrive ToolKey = "google-drive"
	ToolMailchimp   ToolKey = "mailchimp"
	ToolStripe      ToolKey = "stripe"
	ToolPayPal      ToolKey = "paypal"
	ToolDiscord     ToolKey = "discord"
	ToolZoom        ToolKey = "zoom"
	ToolLinkedIn    ToolKey = "linkedin"
	ToolApple       ToolKey = "apple"
	ToolWindows     ToolKey = "windows"
	ToolAndroid     ToolKey = "android"
)

// Tool describes a catalog entry and which plans offer it.
type Tool struct {
	Key   ToolKey
	Label string
	Plans []Plan
}

// ToolCatalog is the fixed set of integrations offered by the site.
var ToolCatalog = []Tool{
	{ToolWhatsApp, "WhatsApp", []Plan{PlanStarter, PlanBusiness}},
	{ToolSlack, "Slack", []Plan{PlanBusiness}},
	{ToolGoogleDrive, "Google Drive", []Plan{PlanStarter, PlanBusiness}},
	{ToolMailchimp, "Mailchimp", []Plan{PlanStarter, PlanBusiness}},
	{ToolStripe, "Stripe", []Plan{PlanStarter, PlanBusiness}},
	{ToolPayPal, "PayPal", []Plan{PlanStarter, PlanBusiness}},
	{ToolDiscord, "Discord", []Plan{PlanStarter, PlanBusiness}},
	{ToolZoom, "Zoom", []Plan{PlanBusiness}},
	{ToolLinkedIn, "LinkedIn", []Plan{PlanBusiness}},
	{ToolApple, "Apple", []Plan{PlanBusiness}},
	{ToolWindows, "Windows", []Plan{PlanBusiness}},
	{ToolAndroid, "Android", []Plan{PlanBusiness}},
}

// IsValid checks if the key is in the catalog
func (k ToolKey) IsValid() bool {
	for _, t := range ToolCatalog {
		if t.Key == k {
			return true
		}
	}
	return false
}

// Label returns the display label, falling back to the raw identifier
// for keys outside the catalog.
func (k ToolKey) Label() string {
	for _, t := range ToolCatalog {
		if t.Key == k {
			return t.Label
		}
	}
	return string(k)
}

// OfferedTo reports whether the given plan may select this tool.
func (k ToolKey) OfferedTo(plan Plan) bool {
	for _, t := range ToolCatalog {
		if t.Key != k {
			continue
		}
		for _, p := range t.Plans {
			if p == plan {
				return true
			}
		}
	}
	return false
}

// ToolsForPlan returns the catalog entries offered to the given plan.
func ToolsForPlan(plan Plan) []Tool {
	var out []Tool
	for _, t := range ToolCatalog {
		for _, p := range t.Plans {
			if p == plan {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

// ============================================================================
// Appointment slots
// ============================================================================

// TimeSlots are the bookable audit slots: half-hours within business
// hours (09:00-11:30 and 14:00-17:00).
var TimeSlots = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00",
}

// IsValidTimeSlot checks slot membership
func IsValidTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// ============================================================================
// Wire payload
// ============================================================================

// QuoteRequest is the payload posted by the wizard to /api/send-quote.
// Appointment fields are required only for the business plan; that rule
// and the date checks live in the usecase because they depend on the
// plan and on the current day.
type QuoteRequest struct {
	Plan      Plan   `json:"plan" validate:"required,oneof=starter business"`
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=320"`
	Phone     string `json:"phone" validate:"max=30"`
	Company   string `json:"company" validate:"max=200"`
	Website   string `json:"website" validate:"max=300"`

	SelectedTools []ToolKey `json:"selectedTools" validate:"required,min=1,dive,quote_tool"`

	SpecificRequests string `json:"specificRequests" validate:"max=5000"`
	Budget           string `json:"budget" validate:"max=50"`
	Timeline         string `json:"timeline" validate:"max=50"`

	// Audit detail fields, collected for the business plan
	CurrentProcess string `json:"currentProcess" validate:"max=2000"`
	PainPoints     string `json:"painPoints" validate:"max=2000"`
	CurrentTools   string `json:"currentTools" validate:"max=2000"`
	TeamSize       string `json:"teamSize" validate:"max=50"`
	Objectives     string `json:"objectives" validate:"max=2000"`

	AppointmentDate string `json:"appointmentDate" validate:"omitempty,max=40"`
	AppointmentTime string `json:"appointmentTime" validate:"omitempty,time_slot"`

	// Enforced by the wizard before submission; the endpoint accepts the
	// payload either way to keep the published contract unchanged.
	AcceptTerms bool   `json:"acceptTerms"`
	SubmittedAt string `json:"submittedAt" validate:"required,max=40"`
}

// QuoteUsecase defines the interface for quote intake
type QuoteUsecase interface {
	// SendQuote validates and dispatches a quote request: one summary to
	// the owner and one confirmation to the submitter.
	SendQuote(ctx context.Context, req *QuoteRequest) error
}

// ============================================================================
// Wizard draft
// ============================================================================

// draftEmailRegex mirrors the form's lightweight address check; the
// gateway re-validates with the full validator on submission.
var draftEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// QuoteDraft is the mutable form state assembled across wizard steps.
// The plan is fixed at construction and never changes mid-wizard.
type QuoteDraft struct {
	Plan Plan

	// Step 1 - Contact info
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Company   string
	Website   string

	// Step 2 - Tools
	SelectedTools []ToolKey

	// Step 3 - Details
	SpecificRequests string
	Budget           string
	Timeline         string
	CurrentProcess   string
	PainPoints       string
	CurrentTools     string
	TeamSize         string
	Objectives       string
	AcceptTerms      bool

	// Step 4 - Appointment (business only)
	AppointmentDate time.Time // zero when unset
	AppointmentTime string
}

func NewQuoteDraft(plan Plan) *QuoteDraft {
	return &QuoteDraft{Plan: plan}
}

// ToggleTool adds or removes a tool. Tools the active plan does not
// offer are refused, so a starter draft can never hold a business tool.
func (d *QuoteDraft) ToggleTool(key ToolKey) bool {
	if !key.OfferedTo(d.Plan) {
		return false
	}
	for i, t := range d.SelectedTools {
		if t == key {
			d.SelectedTools = append(d.SelectedTools[:i], d.SelectedTools[i+1:]...)
			return true
		}
	}
	d.SelectedTools = append(d.SelectedTools, key)
	return true
}

// ContactInfoComplete is the step 1 gate: both names and a well-formed email.
func (d *QuoteDraft) ContactInfoComplete() bool {
	return d.FirstName != "" && d.LastName != "" && draftEmailRegex.MatchString(d.Email)
}

// ToolsChosen is the step 2 gate: at least one tool selected.
func (d *QuoteDraft) ToolsChosen() bool {
	return len(d.SelectedTools) > 0
}

// AppointmentChosen is the step 4 gate (business only): date and slot picked.
func (d *QuoteDraft) AppointmentChosen() bool {
	return !d.AppointmentDate.IsZero() && d.AppointmentTime != ""
}

// CanSubmit gates the final completion: every step valid plus accepted terms.
func (d *QuoteDraft) CanSubmit() bool {
	if !d.ContactInfoComplete() || !d.ToolsChosen() || !d.AcceptTerms {
		return false
	}
	if d.Plan == PlanBusiness {
		return d.AppointmentChosen()
	}
	return true
}

// Request assembles the wire payload. submittedAt is supplied by the
// caller so assembly stays reproducible.
func (d *QuoteDraft) Request(submittedAt time.Time) *QuoteRequest {
	req := &QuoteRequest{
		Plan:             d.Plan,
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Phone:            d.Phone,
		Company:          d.Company,
		Website:          d.Website,
		SelectedTools:    append([]ToolKey(nil), d.SelectedTools...),
		SpecificRequests: d.SpecificRequests,
		Budget:           d.Budget,
		Timeline:         d.Timeline,
		CurrentProcess:   d.CurrentProcess,
		PainPoints:       d.PainPoints,
		CurrentTools:     d.CurrentTools,
		TeamSize:         d.TeamSize,
		Objectives:       d.Objectives,
		AppointmentTime:  d.AppointmentTime,
		AcceptTerms:      d.AcceptTerms,
		SubmittedAt:      submittedAt.UTC().Format(time.RFC3339),
	}
	if !d.AppointmentDate.IsZero() {
		req.AppointmentDate = d.AppointmentDate.UTC().Format(time.RFC3339)
	}
	return req
}

// Reset clears everything but the plan.
func (d *QuoteDraft) Reset() {
	*d = QuoteDraft{Plan: d.Plan}
}
