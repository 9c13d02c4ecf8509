// backend/services/timeService.go
package services

import (
	"encoding/json"
	"net/http"
	"time"
)

// Estrutura para corresponder à resposta da API WorldTime
type WorldTimeResponse struct {
	UTCDateTime string `json:"utc_datetime"`
}

// worldTimeURL é variável para os testes apontarem a um servidor local.
var worldTimeURL = "http://worldtimeapi.org/api/timezone/Etc/UTC"

// O timeout curto garante que um login nunca fica pendurado à espera da API
// de hora; na dúvida usamos a hora do servidor.
var worldTimeClient = &http.Client{Timeout: 3 * time.Second}

// GetWorldTime busca a hora UTC atual de uma API externa, usada no carimbo
// de último login dos colaboradores. Se a API externa falhar, usamos a hora
// do servidor como fallback para manter o sistema a funcionar, e devolvemos
// o erro para o chamador registar.
func GetWorldTime() (time.Time, error) {
	resp, err := worldTimeClient.Get(worldTimeURL)
	if err != nil {
		return time.Now().UTC(), err
	}
	defer resp.Body.Close()

	var worldTime WorldTimeResponse
	if err := json.NewDecoder(resp.Body).Decode(&worldTime); err != nil {
		return time.Now().UTC(), err
	}

	parsedTime, err := time.Parse(time.RFC3339, worldTime.UTCDateTime)
	if err != nil {
		return time.Now().UTC(), err
	}

	return parsedTime, nil
}
