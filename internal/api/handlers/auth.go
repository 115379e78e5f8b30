package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rohits-web03/notedrop/internal/api/middleware"
	"github.com/rohits-web03/notedrop/internal/services"
	"github.com/rohits-web03/notedrop/internal/utils"
	"golang.org/x/oauth2"
)

type AuthHandler struct {
	auth        *services.AuthService
	google      *oauth2.Config
	frontendURL string
}

func NewAuthHandler(auth *services.AuthService, google *oauth2.Config, frontendURL string) *AuthHandler {
	return &AuthHandler{auth: auth, google: google, frontendURL: frontendURL}
}

// Signup godoc
// @Summary Register a new user
// @Description Create an account and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var input struct {
		Email     string `json:"email" validate:"required,email"`
		Password  string `json:"password" validate:"required,min=8"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	result, err := h.auth.Signup(r.Context(), services.SignupInput{
		Email:     input.Email,
		Password:  input.Password,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "User registered successfully",
		Data:    result,
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
		return
	}

	var input struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	result, err := h.auth.Login(r.Context(), input.Email, input.Password)
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
		Data:    result,
	})
}

// Profile dispatches GET (fetch) and PUT (partial update) for the
// authenticated user's own profile.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getProfile(w, r)
	case http.MethodPut:
		h.updateProfile(w, r)
	default:
		utils.JSONResponse(w, http.StatusMethodNotAllowed, utils.Payload{
			Success: false,
			Message: "Method not allowed",
		})
	}
}

// getProfile godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Payload
// @Router /api/auth/profile [get]
func (h *AuthHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	user, err := h.auth.GetProfile(r.Context(), userID)
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Data:    user,
	})
}

// updateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/auth/profile [put]
func (h *AuthHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return
	}

	var input struct {
		FirstName *string `json:"firstName" validate:"omitempty,min=1"`
		LastName  *string `json:"lastName" validate:"omitempty,min=1"`
		Email     *string `json:"email" validate:"omitempty,email"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid input",
		})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	user, err := h.auth.UpdateProfile(r.Context(), userID, services.ProfileUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Profile updated successfully",
		Data:    user,
	})
}

// GoogleLogin starts the OAuth flow. The state carries whether the user is
// logging in or registering.
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.google.ClientID == "" {
		http.Redirect(w, r, h.frontendURL+"/login?error=oauth_disabled", http.StatusTemporaryRedirect)
		return
	}

	redirectType := r.URL.Query().Get("redirect") // "login" or "register"
	if redirectType == "" {
		redirectType = "login"
	}

	state, err := GenerateState(map[string]string{"flow": redirectType})
	if err != nil {
		http.Error(w, "Failed to generate OAuth state", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.google.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	stateData, err := DecodeState(r.FormValue("state"))
	if err != nil {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	flowType := stateData["flow"] // "login" or "register"
	code := r.FormValue("code")

	token, err := h.google.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "Code exchange failed", http.StatusInternalServerError)
		return
	}

	client := h.google.Client(r.Context(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)

	var googleUser struct {
		ID         string `json:"id"`
		Email      string `json:"email"`
		Name       string `json:"name"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
	}
	if err := json.Unmarshal(data, &googleUser); err != nil {
		http.Error(w, "Failed to parse user info", http.StatusInternalServerError)
		return
	}

	firstName := googleUser.GivenName
	if firstName == "" {
		firstName = googleUser.Name
	}
	lastName := googleUser.FamilyName
	if lastName == "" {
		lastName = googleUser.Name
	}

	var result *services.AuthResult
	switch flowType {
	case "register":
		result, err = h.auth.GoogleSignup(r.Context(), googleUser.Email, firstName, lastName)
		if errors.Is(err, services.ErrEmailTaken) {
			http.Redirect(w, r, h.frontendURL+"/login?error=user_already_exists", http.StatusTemporaryRedirect)
			return
		}
	default:
		result, err = h.auth.GoogleLogin(r.Context(), googleUser.Email)
		if errors.Is(err, services.ErrNotFound) {
			http.Redirect(w, r, h.frontendURL+"/signup?error=user_not_found", http.StatusTemporaryRedirect)
			return
		}
	}
	if err != nil {
		http.Error(w, "Failed to authenticate user", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, h.frontendURL+"/dashboard?token="+result.Token, http.StatusTemporaryRedirect)
}
