package export

// FilenamePDF nombre del archivo descargado.
const FilenamePDF = "registros_emergencias.pdf"

// RecordPDFGenerator puerto para la representación PDF del listado exportado.
// Lo implementa infrastructure/pdf (Maroto); la interfaz evita que la capa de
// aplicación dependa del motor de render.
type RecordPDFGenerator interface {
	GenerateRecordsPDF(res *Result) ([]byte, error)
}
