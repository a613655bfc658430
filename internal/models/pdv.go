package models

import "strconv"

// AltaPDVHeader is row 1 of the PDV registration tab, in column order.
var AltaPDVHeader = []string{
	"ID",
	"Estado Kiosco",
	"Paquete",
	"Domicilio",
	"Provincia",
	"Partido",
	"Localidad / Barrio",
	"N° Vendedor",
	"Distribuidora",
	"Dias de atención",
	"Horario",
	"Escaparate",
	"Ubicación",
	"Fachada puesto",
	"Venta productos no editoriales",
	"Reparto",
	"Suscripciones",
	"Nombre y Apellido",
	"Mayor venta",
	"Utiliza Parada Online",
	"Teléfono",
	"Correo electrónico",
	"Observaciones",
	"Comentarios",
	"Relevado por",
	"IMG",
}

// PDVInput is the client payload for a new PDV registration. Field names
// match the form the existing dashboard submits.
type PDVInput struct {
	EstadoKiosco      string `json:"estadoKiosco"`
	Paquete           string `json:"paquete"`
	Domicilio         string `json:"domicilio"`
	Provincia         string `json:"provincia"`
	Partido           string `json:"partido"`
	Localidad         string `json:"localidad"`
	NVendedor         string `json:"nVendedor"`
	Distribuidora     string `json:"distribuidora"`
	DiasAtencion      string `json:"diasAtencion"`
	Horario           string `json:"horario"`
	Escaparate        string `json:"escaparate"`
	Ubicacion         string `json:"ubicacion"`
	Fachada           string `json:"fachada"`
	VentaNoEditorial  string `json:"ventaNoEditorial"`
	Reparto           string `json:"reparto"`
	Suscripciones     string `json:"suscripciones"`
	NombreApellido    string `json:"nombreApellido"`
	MayorVenta        string `json:"mayorVenta"`
	ParadaOnline      string `json:"paradaOnline"`
	Telefono          string `json:"telefono"`
	CorreoElectronico string `json:"correoElectronico"`
	Observaciones     string `json:"observaciones"`
	Comentarios       string `json:"comentarios"`
	ImageURL          string `json:"imageUrl"`
}

// Row renders the input as a sheet row in AltaPDVHeader order. The surveyor
// column is stamped with the caller's email, never a client-supplied value.
func (p *PDVInput) Row(id int, surveyorEmail string) []string {
	return []string{
		strconv.Itoa(id),
		p.EstadoKiosco,
		p.Paquete,
		p.Domicilio,
		p.Provincia,
		p.Partido,
		p.Localidad,
		p.NVendedor,
		p.Distribuidora,
		p.DiasAtencion,
		p.Horario,
		p.Escaparate,
		p.Ubicacion,
		p.Fachada,
		p.VentaNoEditorial,
		p.Reparto,
		p.Suscripciones,
		p.NombreApellido,
		p.MayorVenta,
		p.ParadaOnline,
		p.Telefono,
		p.CorreoElectronico,
		p.Observaciones,
		p.Comentarios,
		surveyorEmail,
		p.ImageURL,
	}
}
