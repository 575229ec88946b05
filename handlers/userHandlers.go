package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"planeja-backend/firebase"
	"planeja-backend/models"
	"planeja-backend/rewards"
	"planeja-backend/utilities"

	"firebase.google.com/go/v4/auth"
)

type SocialLoginInput struct {
	IDToken string `json:"idToken"`
}

// SocialLoginResponse define a estrutura da resposta de sucesso do login
type SocialLoginResponse struct {
	Message     string        `json:"message"`
	FirebaseUID string        `json:"firebaseUid"`
	Welcome     rewards.Quote `json:"welcome"`
}

// AuthMiddleware é um middleware que verifica a autenticação
func AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Pega o token do header Authorization
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utilities.LogError(fmt.Errorf("header de autorização ausente"), "Autenticação falhou")
			http.Error(w, "Authorization header missing", http.StatusUnauthorized)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		// Verifica o token com Firebase
		verifiedToken, err := firebase.VerifyUserToken(tokenString)
		if err != nil {
			utilities.LogError(err, "Token inválido")
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		// Coloca o UID no contexto da requisição
		ctx := context.WithValue(r.Context(), "userUID", verifiedToken.UID)

		// Segue para o próximo handler
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// FinalizeFirebaseLoginHandler processa um ID Token do Firebase para
// verificar o usuário e sincronizá-lo com o banco de dados local.
func FinalizeFirebaseLoginHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogInfo("Recebida requisição para finalizar login com ID Token do Firebase")

	var input SocialLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utilities.LogError(err, "Erro ao decodificar corpo da requisição de login")
		http.Error(w, "Corpo da requisição inválido", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(input.IDToken) == "" {
		utilities.LogError(fmt.Errorf("id token ausente"), "ID Token não fornecido no corpo da requisição")
		http.Error(w, "ID Token é obrigatório", http.StatusBadRequest)
		return
	}

	verifiedToken, err := firebase.VerifyUserToken(input.IDToken)
	if err != nil {
		utilities.LogError(err, "Falha ao verificar ID Token do Firebase")
		http.Error(w, "Token inválido ou falha na verificação", http.StatusUnauthorized)
		return
	}
	utilities.LogInfo("ID Token verificado com sucesso para Firebase UID: %s", verifiedToken.UID)

	// Verificar/criar o usuário no PostgreSQL
	localUserUID, err := firebase.CheckOrCreateUserInPostgres(db, verifiedToken)
	if err != nil {
		utilities.LogError(err, "Erro ao sincronizar usuário com banco de dados local")
		http.Error(w, "Erro interno do servidor ao processar usuário", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, SocialLoginResponse{
		Message:     "Login finalizado e usuário sincronizado com sucesso.",
		FirebaseUID: localUserUID,
		Welcome:     rewards.RandomQuote(rewards.ActionLogin),
	})
}

// RegisterHandler cria o usuário no Firebase e no PostgreSQL
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	utilities.LogDebug("Iniciando registro de novo usuário")

	var user models.Usuario
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utilities.LogError(err, "Erro ao decodificar JSON do corpo da requisição")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	// Validações
	if user.Email == "" {
		utilities.LogError(fmt.Errorf("email não fornecido"), "Validação falhou")
		http.Error(w, "Email is required", http.StatusBadRequest)
		return
	}
	if user.Password == "" {
		utilities.LogError(fmt.Errorf("senha não fornecida"), "Validação falhou")
		http.Error(w, "Password is required", http.StatusBadRequest)
		return
	}
	if user.DisplayName == "" {
		utilities.LogError(fmt.Errorf("nome de exibição não fornecido"), "Validação falhou")
		http.Error(w, "Display name is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	authClient := firebase.GetAuthClient()

	// Verificar se o usuário já existe no Firebase pelo email
	_, err := authClient.GetUserByEmail(ctx, user.Email)
	if err == nil {
		utilities.LogInfo("Tentativa de registro com email já existente: %s", user.Email)
		http.Error(w, "User already exists", http.StatusConflict)
		return
	}
	if !auth.IsUserNotFound(err) {
		utilities.LogError(err, "Erro inesperado ao verificar usuário no Firebase")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	utilities.LogDebug("Criando novo usuário no Firebase: %s", user.Email)
	params := (&auth.UserToCreate{}).
		Email(user.Email).
		Password(user.Password).
		DisplayName(user.DisplayName).
		Disabled(false)

	firebaseUser, err := authClient.CreateUser(ctx, params)
	if err != nil {
		utilities.LogError(err, "Erro ao criar usuário no Firebase")
		http.Error(w, "Failed to create user in Firebase", http.StatusInternalServerError)
		return
	}

	// Agora salva no PostgreSQL
	_, err = db.Exec(
		"INSERT INTO users (firebase_uid, email, display_name) VALUES ($1, $2, $3)",
		firebaseUser.UID, user.Email, user.DisplayName,
	)
	if err != nil {
		utilities.LogError(err, "Erro ao salvar usuário no banco de dados")

		// Reverter a criação no Firebase para não deixar usuário órfão
		if delErr := firebase.DeleteUser(firebaseUser.UID); delErr != nil {
			utilities.LogError(delErr, "Falha ao reverter criação do usuário no Firebase UID: "+firebaseUser.UID)
		}

		http.Error(w, "Failed to save user in database", http.StatusInternalServerError)
		return
	}

	// Gerar Custom Token para o frontend autenticar
	customToken, err := authClient.CustomToken(ctx, firebaseUser.UID)
	if err != nil {
		utilities.LogError(err, "Erro ao gerar custom token")
		http.Error(w, "Failed to generate authentication token", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Usuário registrado com sucesso: %s", user.Email)
	respondJSON(w, http.StatusCreated, map[string]string{
		"message":     "User created successfully and ready to sign in",
		"uid":         firebaseUser.UID,
		"customToken": customToken,
	})
}

// UserHandler retorna informações do usuário atual
func UserHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.Usuario
	err = db.QueryRow("SELECT firebase_uid, email, display_name FROM users WHERE firebase_uid = $1", uid).
		Scan(&user.FirebaseUID, &user.Email, &user.DisplayName)
	if err == sql.ErrNoRows {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	if err != nil {
		utilities.LogError(err, "Erro ao buscar usuário")
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// UpdateUserHandler atualiza informações do usuário
func UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var updateData struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&updateData); err != nil {
		utilities.LogError(err, "Erro ao decodificar dados de atualização")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	_, err = db.Exec("UPDATE users SET display_name = $1 WHERE firebase_uid = $2",
		updateData.DisplayName, uid)
	if err != nil {
		utilities.LogError(err, "Erro ao atualizar usuário")
		http.Error(w, "Failed to update user", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "User updated successfully",
	})
}

// LogoutHandler revoga os refresh tokens do usuário no Firebase
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := userUIDFromContext(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	authClient := firebase.GetAuthClient()
	if err := authClient.RevokeRefreshTokens(r.Context(), uid); err != nil {
		utilities.LogError(err, "Erro ao revogar tokens")
		http.Error(w, "Erro ao fazer logout", http.StatusInternalServerError)
		return
	}

	utilities.LogInfo("Tokens revogados para UID: %s", uid)
	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Logout efetuado com sucesso",
	})
}
