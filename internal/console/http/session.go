package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/novalend/console/internal/console/domain"
	"github.com/novalend/console/internal/console/service"
	"github.com/novalend/console/pkg/consolesdk"
	"github.com/novalend/console/pkg/httpx"
	"github.com/novalend/console/pkg/slogx"
)

// SessionHandler handles login, MFA completion, whoami and logout.
type SessionHandler struct {
	SessionService *service.SessionService
}

// HandleLogin handles POST /v1/session
//
//	@Summary		Log in
//	@Description	Authenticates an admin with email/password and returns a session token.
//	@Description	When the account has MFA enabled, returns 409 with an mfa_token to be
//	@Description	exchanged at POST /v1/session/mfa.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		object{email=string,password=string}	true	"Credentials"
//	@Success		200		{object}	consolesdk.SessionResponse				"Session token"
//	@Failure		400		{object}	consolesdk.ErrorResponse				"Malformed request"
//	@Failure		401		{object}	consolesdk.ErrorResponse				"Invalid credentials"
//	@Failure		409		{object}	consolesdk.MFARequiredError				"MFA required"
//	@Failure		500		{object}	consolesdk.ErrorResponse				"Internal server error"
//	@Router			/v1/session [post].
func (h *SessionHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" || req.Password == "" {
		consolesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, err := h.SessionService.Login(ctx, req.Email, req.Password)
	if err != nil {
		var mfaErr *service.MFARequiredError
		switch {
		case errors.As(err, &mfaErr):
			mfaErr.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			consolesdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			consolesdk.ErrServerError.WriteError(w)
		}
		return
	}

	writeSessionToken(w, token)
}

// HandleCompleteMFA handles POST /v1/session/mfa
//
//	@Summary		Complete MFA login
//	@Description	Exchanges an mfa_token plus a TOTP code for a session token.
//	@Tags			Session
//	@Accept			json
//	@Produce		json
//	@Param			request	body		object{mfa_token=string,otp_code=string}	true	"Challenge token and TOTP code"
//	@Success		200		{object}	consolesdk.SessionResponse					"Session token"
//	@Failure		400		{object}	consolesdk.ErrorResponse					"Malformed request"
//	@Failure		401		{object}	consolesdk.ErrorResponse					"Invalid or expired challenge, or wrong code"
//	@Failure		429		{object}	consolesdk.ErrorResponse					"Too many failed attempts"
//	@Failure		500		{object}	consolesdk.ErrorResponse					"Internal server error"
//	@Router			/v1/session/mfa [post].
func (h *SessionHandler) HandleCompleteMFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req struct {
		MFAToken string `json:"mfa_token"`
		OTPCode  string `json:"otp_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MFAToken == "" || req.OTPCode == "" {
		consolesdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, err := h.SessionService.CompleteMFA(ctx, req.MFAToken, req.OTPCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidMFAToken):
			consolesdk.ErrInvalidToken.WriteError(w)
		case errors.Is(err, service.ErrTooManyAttempts):
			consolesdk.NewAPIError(http.StatusTooManyRequests,
				"too_many_attempts",
				"too many failed MFA attempts, log in again",
			).WriteError(w)
		default:
			log.Error("mfa completion failed", "err", err)
			consolesdk.ErrServerError.WriteError(w)
		}
		return
	}

	writeSessionToken(w, token)
}

// HandleWhoAmI handles GET /v1/session
//
//	@Summary		Current admin
//	@Description	Returns the admin account behind the session token.
//	@Tags			Session
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	consolesdk.WhoAmIResponse	"Admin profile"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500	{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/session [get].
func (h *SessionHandler) HandleWhoAmI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	adminID := httpx.AdminIDFromCtx(ctx)
	if adminID == "" {
		consolesdk.ErrInvalidToken.WriteError(w)
		return
	}

	admin, err := h.SessionService.WhoAmI(ctx, adminID)
	if err != nil {
		log.Warn("failed to load admin", "admin_id", adminID, "err", err)
		consolesdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, consolesdk.WhoAmIResponse{
		ID:         admin.ID,
		Email:      admin.Email,
		MFAEnabled: admin.MFAEnabled != nil,
	})
}

// HandleLogout handles DELETE /v1/session
//
//	@Summary		Log out
//	@Description	Revokes the session server-side. The token stops working immediately.
//	@Tags			Session
//	@Security		BearerAuth
//	@Success		204	"Session revoked"
//	@Failure		401	{object}	consolesdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500	{object}	consolesdk.ErrorResponse	"Internal server error"
//	@Router			/v1/session [delete].
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sessionID := httpx.SessionIDFromCtx(ctx)
	if sessionID == "" {
		consolesdk.ErrInvalidToken.WriteError(w)
		return
	}

	if err := h.SessionService.Logout(ctx, sessionID); err != nil {
		log.Error("logout failed", "session_id", sessionID, "err", err)
		consolesdk.ErrServerError.WriteError(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeSessionToken(w http.ResponseWriter, token *domain.SessionToken) {
	httpx.WriteJSON(w, http.StatusOK, consolesdk.SessionResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	})
}
