package repository

import "os"

// getenvDefault backs the table-name config (NOTAS_TABLE,
// NOTAS_HISTORICO_TABLE, CONTADORES_TABLE) so local runs work without any
// env set.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
