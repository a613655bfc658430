package models

import "strconv"

// GPSLogHeader is row 1 of the GPS log tab. Columns A-G.
var GPSLogHeader = []string{"Fecha", "Hora", "Email", "Latitud", "Longitud", "Dispositivo", "Evento"}

// gpsEventLabels translates client event reasons into the labels shown in
// the sheet.
var gpsEventLabels = map[string]string{
	"login":      "Inicio sesión",
	"foreground": "Volvió a la app",
	"focus":      "Foco en ventana",
}

// GPSEventLabel resolves the sheet label for a client reason. Unknown
// reasons pass through verbatim; an empty reason becomes "Desconocido".
func GPSEventLabel(reason string) string {
	if label, ok := gpsEventLabels[reason]; ok {
		return label
	}
	if reason == "" {
		return "Desconocido"
	}
	return reason
}

// GPSLog is one GPS fix parsed back out of the log tab.
type GPSLog struct {
	ID          int     `json:"id"`
	Fecha       string  `json:"fecha"`
	Hora        string  `json:"hora"`
	Email       string  `json:"email"`
	Latitud     float64 `json:"latitud"`
	Longitud    float64 `json:"longitud"`
	Dispositivo string  `json:"dispositivo"`
	Evento      string  `json:"evento"`
}

// ParseGPSLogRow parses one raw sheet row (columns A-G). Rows with a zero
// coordinate are considered noise and return nil, matching how the
// dashboard filters them.
func ParseGPSLogRow(index int, row []string) *GPSLog {
	log := &GPSLog{
		ID:          index,
		Fecha:       cell(row, 0),
		Hora:        cell(row, 1),
		Email:       cell(row, 2),
		Dispositivo: cell(row, 5),
		Evento:      cell(row, 6),
	}
	log.Latitud, _ = strconv.ParseFloat(cell(row, 3), 64)
	log.Longitud, _ = strconv.ParseFloat(cell(row, 4), 64)
	if log.Latitud == 0 || log.Longitud == 0 {
		return nil
	}
	return log
}
