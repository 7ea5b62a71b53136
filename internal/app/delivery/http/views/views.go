package views

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"net/http"
	"path"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"strconv"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates *template.Template

func init() {
	templates = template.Must(template.New("").Funcs(template.FuncMap{
		"renderEntry": RenderEntry,
	}).ParseFS(templateFS, "templates/*.html"))
}

// Renderer writes the server-rendered pages. Output is buffered so a
// failed render never leaves a half-written page behind.
type Renderer struct {
	BasePath string
}

func NewRenderer(endpointPrefix string) *Renderer {
	return &Renderer{BasePath: path.Join("/", endpointPrefix)}
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type diagnosisOption struct {
	Code     string
	Name     string
	Selected bool
}

type pageActions struct {
	SelectType string
	Submit     string
	Cancel     string
}

// draftForm exposes the draft with exactly one variant field set.
type draftForm struct {
	Type                   models.EntryType
	Base                   models.BaseDraft
	HealthCheck            *models.HealthCheckDraft
	Hospital               *models.HospitalDraft
	OccupationalHealthcare *models.OccupationalHealthcareDraft
}

type patientPageView struct {
	Title            string
	Errors           []string
	Patient          *models.Patient
	Diagnoses        models.Diagnoses
	GenderIcon       GenderIcon
	Actions          pageActions
	Form             draftForm
	EntryTypes       []option
	RatingOptions    []option
	DiagnosisOptions []diagnosisOption
}

type errorPageView struct {
	Title    string
	Messages []string
}

func (r *Renderer) RenderPatientPage(w io.Writer, page *models.PatientPage) error {
	view := patientPageView{
		Title:     constvars.PageTitlePatientDetail,
		Errors:    page.Errors,
		Patient:   page.Patient,
		Diagnoses: page.Diagnoses,
		Actions:   r.actions(page.PatientID),
		Form:      newDraftForm(page.Draft),
	}
	if page.Patient != nil {
		view.Title = page.Patient.Name
		view.GenderIcon = IconForGender(page.Patient.Gender)
	}
	view.EntryTypes = entryTypeOptions(view.Form.Type)
	view.RatingOptions = ratingOptions(view.Form.HealthCheck)
	view.DiagnosisOptions = diagnosisOptions(page.Diagnoses, view.Form.Base.DiagnosisCodes)

	return r.execute(w, "patient_page", view)
}

func (r *Renderer) RenderErrorPage(w io.Writer, messages ...string) error {
	return r.execute(w, "error_page", errorPageView{
		Title:    constvars.PageTitleError,
		Messages: messages,
	})
}

func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *Renderer) actions(patientID string) pageActions {
	patientPath := path.Join(r.BasePath, constvars.ResourcePatients, patientID)
	entriesPath := path.Join(patientPath, constvars.ResourceEntries)
	return pageActions{
		SelectType: path.Join(entriesPath, "type"),
		Submit:     entriesPath,
		Cancel:     path.Join(entriesPath, "cancel"),
	}
}

func newDraftForm(draft models.Draft) draftForm {
	if draft == nil {
		draft = models.BlankDraft()
	}
	form := draftForm{Type: draft.DraftType(), Base: draft.Common()}
	switch d := draft.(type) {
	case models.HealthCheckDraft:
		form.HealthCheck = &d
	case models.HospitalDraft:
		form.Hospital = &d
	case models.OccupationalHealthcareDraft:
		form.OccupationalHealthcare = &d
	}
	return form
}

func entryTypeOptions(selected models.EntryType) []option {
	options := make([]option, 0, len(models.EntryTypes()))
	for _, entryType := range models.EntryTypes() {
		options = append(options, option{
			Value:    string(entryType),
			Label:    string(entryType),
			Selected: entryType == selected,
		})
	}
	return options
}

func ratingOptions(draft *models.HealthCheckDraft) []option {
	options := make([]option, 0, len(models.HealthCheckRatings()))
	for _, rating := range models.HealthCheckRatings() {
		options = append(options, option{
			Value:    strconv.Itoa(int(rating)),
			Label:    rating.Label(),
			Selected: draft != nil && draft.HealthCheckRating != nil && *draft.HealthCheckRating == rating,
		})
	}
	return options
}

func diagnosisOptions(diagnoses models.Diagnoses, selectedCodes []string) []diagnosisOption {
	selected := make(map[string]bool, len(selectedCodes))
	for _, code := range selectedCodes {
		selected[code] = true
	}

	options := make([]diagnosisOption, 0, len(diagnoses))
	for _, diagnosis := range diagnoses {
		options = append(options, diagnosisOption{
			Code:     diagnosis.Code,
			Name:     diagnosis.Name,
			Selected: selected[diagnosis.Code],
		})
	}
	return options
}

// WriteError renders the error page with status. If the page itself cannot
// be rendered the messages are sent as plain text.
func (r *Renderer) WriteError(w http.ResponseWriter, status int, messages ...string) {
	var buf bytes.Buffer
	if err := r.RenderErrorPage(&buf, messages...); err != nil {
		http.Error(w, strings.Join(messages, "\n"), status)
		return
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	buf.WriteTo(w)
}
