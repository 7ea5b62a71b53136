package controllers

import (
	"bytes"
	"context"
	"net/http"
	"patientor-service/internal/app/config"
	"patientor-service/internal/app/contracts"
	"patientor-service/internal/app/delivery/http/forms"
	"patientor-service/internal/app/delivery/http/views"
	"patientor-service/internal/app/models"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/exceptions"
	"patientor-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
}

func NewPatientController(
	logger *zap.Logger,
	patientUsecase contracts.PatientUsecase,
	renderer *views.Renderer,
	internalConfig *config.InternalConfig,
) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		Renderer:       renderer,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) GetPatientPage(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	patientID, ok := ctrl.patientIDParam(w, r)
	if !ok {
		return
	}
	ctrl.Log.Info("PatientController.GetPatientPage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	page := ctrl.PatientUsecase.LoadPatientPage(ctx, patientID)
	ctrl.writePage(w, r, page)
}

func (ctrl *PatientController) SelectEntryType(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	patientID, ok := ctrl.patientIDParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		ctrl.writeError(w, exceptions.ErrCannotParseForm(err))
		return
	}

	entryType, err := forms.ParseEntryType(utils.SanitizeFormValues(r.PostForm))
	if err != nil {
		ctrl.Log.Error("PatientController.SelectEntryType error parsing entry type",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.writeError(w, err)
		return
	}
	ctrl.Log.Info("PatientController.SelectEntryType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingEntryTypeKey, string(entryType)),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	page, err := ctrl.PatientUsecase.SelectEntryType(ctx, patientID, entryType)
	if err != nil {
		ctrl.writeError(w, exceptions.ErrUnsupportedEntryType(err, string(entryType)))
		return
	}
	ctrl.writePage(w, r, page)
}

func (ctrl *PatientController) SubmitEntry(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	patientID, ok := ctrl.patientIDParam(w, r)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		ctrl.writeError(w, exceptions.ErrCannotParseForm(err))
		return
	}

	draft, err := forms.DecodeDraft(r.PostForm)
	if err != nil {
		ctrl.Log.Error("PatientController.SubmitEntry error decoding draft",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.writeError(w, err)
		return
	}
	ctrl.Log.Info("PatientController.SubmitEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.String(constvars.LoggingEntryTypeKey, string(draft.DraftType())),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	page := ctrl.PatientUsecase.SubmitEntry(ctx, patientID, draft)
	ctrl.writePage(w, r, page)
}

func (ctrl *PatientController) CancelEntry(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	patientID, ok := ctrl.patientIDParam(w, r)
	if !ok {
		return
	}
	ctrl.Log.Info("PatientController.CancelEntry called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	ctx, cancel := ctrl.requestContext(r)
	defer cancel()

	page := ctrl.PatientUsecase.CancelEntry(ctx, patientID)
	ctrl.writePage(w, r, page)
}

func (ctrl *PatientController) patientIDParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	patientID := chi.URLParam(r, constvars.URLParamPatientID)
	if err := utils.ValidateVar(patientID, "required,max=64"); err != nil {
		ctrl.writeError(w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamPatientID))
		return "", false
	}
	return patientID, true
}

func (ctrl *PatientController) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// writePage renders page with a status that reflects its state: a page
// that never loaded is a gateway failure and a rejected draft is
// unprocessable.
func (ctrl *PatientController) writePage(w http.ResponseWriter, r *http.Request, page *models.PatientPage) {
	status := constvars.StatusOK
	switch {
	case !page.IsLoaded():
		status = constvars.StatusBadGateway
	case page.HasErrors():
		status = constvars.StatusUnprocessableEntity
	}

	var buf bytes.Buffer
	if err := ctrl.Renderer.RenderPatientPage(&buf, page); err != nil {
		ctrl.Log.Error("PatientController.writePage error rendering page",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
			zap.String(constvars.LoggingPatientIDKey, page.PatientID),
			zap.Error(err),
		)
		ctrl.writeError(w, exceptions.ErrRenderTemplate(err, "patient_page"))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (ctrl *PatientController) writeError(w http.ResponseWriter, err error) {
	code, clientMessage := utils.ResolveError(ctrl.Log, err)
	ctrl.Renderer.WriteError(w, code, clientMessage)
}
