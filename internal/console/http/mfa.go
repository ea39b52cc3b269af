package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/pkg/consolesdk"
	"github.com/novalend/console/pkg/httpx"
	"github.com/novalend/console/pkg/slogx"
)

// MFAHandler handles TOTP enrollment for the authenticated admin.
type MFAHandler struct {
	MFAService *service.MFAService
}

// HandleEnroll handles POST /v1/session/mfa/enroll
//
//	@Summary		Enroll in TOTP MFA
//	@Description	Generates a TOTP secret for the authenticated admin and returns the
//	@Description	provisioning URL. MFA is not enforced until a code is confirmed via
//	@Description	the activate endpoint.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	consolesdk.MFAEnrollResponse	"TOTP secret and provisioning URL"
//	@Failure		400	{object}	consolesdk.ErrorResponse		"MFA already enabled"
//	@Failure		401	{object}	consolesdk.ErrorResponse		"Invalid or missing session token"
//	@Failure		500	{object}	consolesdk.ErrorResponse		"Internal server error"
//	@Router			/v1/session/mfa/enroll [post].
func (h *MFAHandler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	adminID := httpx.AdminIDFromCtx(ctx)
	if adminID == "" {
		consolesdk.ErrInvalidToken.WriteError(w)
		return
	}

	enrollment, err := h.MFAService.EnrollTOTP(ctx, adminID)
	if err != nil {
		if errors.Is(err, service.ErrMFAAlreadyEnabled) {
			log.Warn("MFA already enabled", "admin_id", adminID)
			consolesdk.NewAPIError(http.StatusBadRequest,
				"mfa_already_enabled",
				"MFA is already enabled for this admin",
			).WriteError(w)
			return
		}
		log.Error("failed to enroll TOTP", "admin_id", adminID, "err", err)
		consolesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, consolesdk.MFAEnrollResponse{
		Secret: enrollment.Secret,
		URL:    enrollment.URL,
	})
}

// HandleActivate handles POST /v1/session/mfa/activate
//
//	@Summary		Activate TOTP MFA
//	@Description	Confirms a pending enrollment with a code from the authenticator app.
//	@Description	After this call, login requires the second factor.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	object{otp_code=string}	true	"TOTP code"
//	@Success		204		"MFA activated"
//	@Failure		400		{object}	consolesdk.ErrorResponse	"Invalid code or no pending enrollment"
//	@Failure		401		{object}	consolesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500		{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/session/mfa/activate [post].
func (h *MFAHandler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	h.confirmCode(w, r, h.MFAService.ActivateTOTP)
}

// HandleRemove handles DELETE /v1/session/mfa
//
//	@Summary		Remove TOTP MFA
//	@Description	Disables MFA for the authenticated admin. A current code is required
//	@Description	to prove possession of the authenticator.
//	@Tags			MFA
//	@Security		BearerAuth
//	@Accept			json
//	@Param			request	body	object{otp_code=string}	true	"TOTP code"
//	@Success		204		"MFA removed"
//	@Failure		400		{object}	consolesdk.ErrorResponse	"Invalid code or MFA not enabled"
//	@Failure		401		{object}	consolesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500		{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/session/mfa [delete].
func (h *MFAHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	h.confirmCode(w, r, h.MFAService.RemoveTOTP)
}

// confirmCode is the shared body for activate/remove: decode the otp_code,
// run the operation, map its errors.
func (h *MFAHandler) confirmCode(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, adminID, code string) error,
) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	adminID := httpx.AdminIDFromCtx(ctx)
	if adminID == "" {
		consolesdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req struct {
		OTPCode string `json:"otp_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.OTPCode == "" {
		consolesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := op(ctx, adminID, req.OTPCode); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTOTPCode),
			errors.Is(err, service.ErrMFANotEnrolled),
			errors.Is(err, service.ErrMFANotEnabled),
			errors.Is(err, service.ErrMFAAlreadyEnabled):
			consolesdk.NewAPIError(http.StatusBadRequest,
				"invalid_mfa_state",
				err.Error(),
			).WriteError(w)
		default:
			log.Error("mfa operation failed", "admin_id", adminID, "err", err)
			consolesdk.ErrServerError.WriteError(w)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
