package records

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/emergencias-api/internal/application/dto"
	"github.com/tu-usuario/emergencias-api/internal/domain"
	"github.com/tu-usuario/emergencias-api/internal/domain/entity"
	"github.com/tu-usuario/emergencias-api/internal/domain/repository"
)

// DuplicateRecordError envuelve ErrDuplicateRecord con el id del registro que
// ya ocupa (fecha, hospital), para que el cliente pueda ir directo a editarlo.
type DuplicateRecordError struct {
	ExistingID string
}

func (e *DuplicateRecordError) Error() string { return domain.ErrDuplicateRecord.Error() }

// Unwrap permite errors.Is(err, domain.ErrDuplicateRecord).
func (e *DuplicateRecordError) Unwrap() error { return domain.ErrDuplicateRecord }

// UseCase operaciones sobre registros de emergencias: el CRUD con la regla de
// un registro por (fecha, hospital) y el motor de consulta compartido.
type UseCase struct {
	recordRepo   repository.RecordRepository
	hospitalRepo repository.HospitalRepository
	now          func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(recordRepo repository.RecordRepository, hospitalRepo repository.HospitalRepository) *UseCase {
	return &UseCase{recordRepo: recordRepo, hospitalRepo: hospitalRepo, now: time.Now}
}

// Create da de alta el parte diario.
//
// El hospital destino se resuelve por rol: un admin lo elige (y debe ser un
// hospital activo); un usuario reporta siempre sobre su hospital asignado,
// ignorando lo que venga en la entrada. Contadores inválidos valen 0
// (política de coerción en alta). Fecha ausente = hoy.
func (uc *UseCase) Create(actor entity.Actor, in dto.RecordInput) (*dto.RecordResponse, error) {
	hospital, err := uc.resolveHospital(actor, in.Hospital)
	if err != nil {
		return nil, err
	}

	hoy := uc.now()
	fecha := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, time.UTC)
	if f := parseFecha(in.Fecha); f != nil {
		fecha = *f
	}

	existente, err := uc.recordRepo.GetByFechaHospital(fecha, hospital)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, &DuplicateRecordError{ExistingID: existente.ID}
	}

	now := uc.now()
	rec := &entity.EmergencyRecord{
		ID:                 uuid.New().String(),
		Fecha:              fecha,
		Hospital:           hospital,
		Atenciones:         coerceCounter(in.Atenciones),
		Ingresos:           coerceCounter(in.Ingresos),
		AltaVoluntaria:     coerceCounter(in.AltaVoluntaria),
		Traslados:          coerceCounter(in.Traslados),
		Defunciones:        coerceCounter(in.Defunciones),
		MotivoTraslado:     strings.TrimSpace(in.MotivoTraslado),
		HospitalReferencia: strings.TrimSpace(in.HospitalReferencia),
		Eventualidades:     strings.TrimSpace(in.Eventualidades),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.recordRepo.Create(rec); err != nil {
		return nil, err
	}
	return toRecordResponse(rec), nil
}

// Update edita un registro.
//
// Regla de coerción en edición: un contador presente y parseable se guarda
// acotado a >= 0; ausente, vacío o no parseable conserva el valor previo.
// Los campos de texto libre siempre se sobreescriben. La fecha ausente
// conserva la previa.
func (uc *UseCase) Update(actor entity.Actor, id string, in dto.RecordInput) (*dto.RecordResponse, error) {
	rec, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.IsAdmin() && rec.Hospital != actor.Hospital {
		return nil, domain.ErrForbidden
	}

	hospitalInput := in.Hospital
	if actor.IsAdmin() && strings.TrimSpace(hospitalInput) == "" {
		hospitalInput = rec.Hospital
	}
	hospital, err := uc.resolveHospital(actor, hospitalInput)
	if err != nil {
		return nil, err
	}

	fecha := rec.Fecha
	if f := parseFecha(in.Fecha); f != nil {
		fecha = *f
	}

	// Duplicado en OTRO registro: el mismo id puede quedarse donde está.
	duplicado, err := uc.recordRepo.GetByFechaHospital(fecha, hospital)
	if err != nil {
		return nil, err
	}
	if duplicado != nil && duplicado.ID != rec.ID {
		return nil, &DuplicateRecordError{ExistingID: duplicado.ID}
	}

	rec.Fecha = fecha
	rec.Hospital = hospital
	rec.Atenciones = coerceCounterOr(in.Atenciones, rec.Atenciones)
	rec.Ingresos = coerceCounterOr(in.Ingresos, rec.Ingresos)
	rec.AltaVoluntaria = coerceCounterOr(in.AltaVoluntaria, rec.AltaVoluntaria)
	rec.Traslados = coerceCounterOr(in.Traslados, rec.Traslados)
	rec.Defunciones = coerceCounterOr(in.Defunciones, rec.Defunciones)
	rec.MotivoTraslado = strings.TrimSpace(in.MotivoTraslado)
	rec.HospitalReferencia = strings.TrimSpace(in.HospitalReferencia)
	rec.Eventualidades = strings.TrimSpace(in.Eventualidades)
	rec.UpdatedAt = uc.now()

	if err := uc.recordRepo.Update(rec); err != nil {
		return nil, err
	}
	return toRecordResponse(rec), nil
}

// Delete elimina definitivamente un registro. Solo administradores.
func (uc *UseCase) Delete(actor entity.Actor, id string) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	rec, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return domain.ErrNotFound
	}
	return uc.recordRepo.Delete(id)
}

// Get devuelve un registro; un usuario solo puede ver los de su hospital.
func (uc *UseCase) Get(actor entity.Actor, id string) (*dto.RecordResponse, error) {
	rec, err := uc.recordRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if !actor.IsAdmin() && rec.Hospital != actor.Hospital {
		return nil, domain.ErrForbidden
	}
	return toRecordResponse(rec), nil
}

// List listado filtrado, más reciente primero.
func (uc *UseCase) List(actor entity.Actor, hospital, desde, hasta string) (*dto.RecordListResponse, error) {
	filter := BuildFilter(actor, hospital, desde, hasta, repository.OrderRecentFirst)
	list, err := uc.recordRepo.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RecordResponse, 0, len(list))
	for _, rec := range list {
		items = append(items, *toRecordResponse(rec))
	}
	return &dto.RecordListResponse{Items: items, Total: len(items)}, nil
}

// Query ejecuta el motor de consulta compartido y devuelve las entidades,
// para consumidores que agregan o formatean (dashboard, exportaciones).
func (uc *UseCase) Query(actor entity.Actor, hospital, desde, hasta string, order repository.RecordOrder) ([]*entity.EmergencyRecord, repository.RecordFilter, error) {
	filter := BuildFilter(actor, hospital, desde, hasta, order)
	list, err := uc.recordRepo.List(filter)
	return list, filter, err
}

// QueryFiltered ejecuta una consulta con un filtro ya construido (reintentos).
func (uc *UseCase) QueryFiltered(filter repository.RecordFilter) ([]*entity.EmergencyRecord, error) {
	return uc.recordRepo.List(filter)
}

// resolveHospital aplica la regla de hospital destino por rol.
func (uc *UseCase) resolveHospital(actor entity.Actor, input string) (string, error) {
	if !actor.IsAdmin() {
		if actor.Hospital == "" {
			return "", domain.ErrForbidden
		}
		return actor.Hospital, nil
	}
	nombre := strings.TrimSpace(input)
	if nombre == "" {
		return "", domain.ErrInvalidHospital
	}
	h, err := uc.hospitalRepo.GetByNombre(nombre)
	if err != nil {
		return "", err
	}
	if h == nil || !h.Activo {
		return "", domain.ErrInvalidHospital
	}
	return nombre, nil
}

// coerceCounter política de alta: inválido, ausente o negativo vale 0.
func coerceCounter(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// coerceCounterOr política de edición: inválido o ausente conserva el valor
// previo; un negativo jamás se almacena.
func coerceCounterOr(s string, prev int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return prev
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return prev
	}
	return n
}

func toRecordResponse(rec *entity.EmergencyRecord) *dto.RecordResponse {
	if rec == nil {
		return nil
	}
	return &dto.RecordResponse{
		ID:                 rec.ID,
		Fecha:              FormatFecha(rec.Fecha),
		Hospital:           rec.Hospital,
		Atenciones:         rec.Atenciones,
		Ingresos:           rec.Ingresos,
		AltaVoluntaria:     rec.AltaVoluntaria,
		Traslados:          rec.Traslados,
		Defunciones:        rec.Defunciones,
		MotivoTraslado:     rec.MotivoTraslado,
		HospitalReferencia: rec.HospitalReferencia,
		Eventualidades:     rec.Eventualidades,
		CreatedAt:          rec.CreatedAt,
		UpdatedAt:          rec.UpdatedAt,
	}
}
