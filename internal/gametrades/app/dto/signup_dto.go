// Package dto содержит объекты передачи данных HTTP API.
package dto

// SignupRequest содержит данные для регистрации пользователя.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignupResponse возвращается при успешной регистрации.
type SignupResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse содержит сообщение об ошибке для клиента.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ImageResponse содержит URL обложки игры.
type ImageResponse struct {
	URL string `json:"url"`
}
