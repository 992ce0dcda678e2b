package utils

import (
	"encoding/json"
	"net/http"
)

// JSON escreve v como corpo JSON com o status informado.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Mensagem responde {"message": msg}, formato usado pelos endpoints de ação.
func Mensagem(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"message": msg})
}
