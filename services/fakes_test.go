package services

import (
	"CareLink/models"
	"CareLink/utils"
	"context"
	"sort"
	"time"
)

// In-memory repository doubles. They mirror the SQL-backed implementations
// closely enough to exercise the service layer: scoped lookups return nil
// instead of foreign rows, and the mapping store enforces pair uniqueness.

type fakePatientRepo struct {
	patients map[uint]*models.Patient
	nextID   uint
}

func newFakePatientRepo() *fakePatientRepo {
	return &fakePatientRepo{patients: make(map[uint]*models.Patient)}
}

func (r *fakePatientRepo) ListByOwner(ctx context.Context, ownerID int64) ([]models.Patient, error) {
	var out []models.Patient
	for _, p := range r.patients {
		if p.CreatedByID == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakePatientRepo) Create(ctx context.Context, patient *models.Patient) error {
	r.nextID++
	patient.ID = r.nextID
	patient.CreatedAt = time.Now()
	copied := *patient
	r.patients[patient.ID] = &copied
	return nil
}

func (r *fakePatientRepo) GetByID(ctx context.Context, patientID uint) (*models.Patient, error) {
	if p, ok := r.patients[patientID]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) GetByIDForOwner(ctx context.Context, patientID uint, ownerID int64) (*models.Patient, error) {
	if p, ok := r.patients[patientID]; ok && p.CreatedByID == ownerID {
		copied := *p
		return &copied, nil
	}
	return nil, nil
}

func (r *fakePatientRepo) EmailExistsForOwner(ctx context.Context, email string, ownerID int64, excludeID uint) (bool, error) {
	for _, p := range r.patients {
		if p.Email == email && p.CreatedByID == ownerID && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakePatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	if existing, ok := r.patients[patient.ID]; ok {
		patient.CreatedAt = existing.CreatedAt
		copied := *patient
		r.patients[patient.ID] = &copied
	}
	return nil
}

func (r *fakePatientRepo) Delete(ctx context.Context, patientID uint, ownerID int64) (bool, error) {
	if p, ok := r.patients[patientID]; ok && p.CreatedByID == ownerID {
		delete(r.patients, patientID)
		return true, nil
	}
	return false, nil
}

type fakeDoctorRepo struct {
	doctors map[uint]*models.Doctor
	nextID  uint
}

func newFakeDoctorRepo() *fakeDoctorRepo {
	return &fakeDoctorRepo{doctors: make(map[uint]*models.Doctor)}
}

func (r *fakeDoctorRepo) ListAll(ctx context.Context) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range r.doctors {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeDoctorRepo) Create(ctx context.Context, doctor *models.Doctor) error {
	r.nextID++
	doctor.ID = r.nextID
	copied := *doctor
	r.doctors[doctor.ID] = &copied
	return nil
}

func (r *fakeDoctorRepo) GetByID(ctx context.Context, doctorID uint) (*models.Doctor, error) {
	if d, ok := r.doctors[doctorID]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeDoctorRepo) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	for _, d := range r.doctors {
		if d.Email == email && d.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeDoctorRepo) Update(ctx context.Context, doctor *models.Doctor) error {
	if _, ok := r.doctors[doctor.ID]; ok {
		copied := *doctor
		r.doctors[doctor.ID] = &copied
	}
	return nil
}

func (r *fakeDoctorRepo) Delete(ctx context.Context, doctorID uint) (bool, error) {
	if _, ok := r.doctors[doctorID]; ok {
		delete(r.doctors, doctorID)
		return true, nil
	}
	return false, nil
}

type fakeMappingRepo struct {
	mappings    map[uint]*models.PatientDoctorMapping
	nextID      uint
	patientRepo *fakePatientRepo
	doctorRepo  *fakeDoctorRepo
}

func newFakeMappingRepo(patients *fakePatientRepo, doctors *fakeDoctorRepo) *fakeMappingRepo {
	return &fakeMappingRepo{
		mappings:    make(map[uint]*models.PatientDoctorMapping),
		patientRepo: patients,
		doctorRepo:  doctors,
	}
}

func (r *fakeMappingRepo) Create(ctx context.Context, mapping *models.PatientDoctorMapping) error {
	for _, m := range r.mappings {
		if m.PatientID == mapping.PatientID && m.DoctorID == mapping.DoctorID {
			return utils.IntegrityError("duplicate mapping", nil)
		}
	}
	r.nextID++
	mapping.ID = r.nextID
	mapping.AssignedDate = time.Now()
	copied := *mapping
	r.mappings[mapping.ID] = &copied
	return nil
}

func (r *fakeMappingRepo) GetByPair(ctx context.Context, patientID, doctorID uint) (*models.PatientDoctorMapping, error) {
	for _, m := range r.mappings {
		if m.PatientID == patientID && m.DoctorID == doctorID {
			copied := *m
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeMappingRepo) ActiveExists(ctx context.Context, patientID, doctorID uint) (bool, error) {
	for _, m := range r.mappings {
		if m.PatientID == patientID && m.DoctorID == doctorID && m.IsActive {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeMappingRepo) Reactivate(ctx context.Context, mappingID uint, ownerID int64, notes string) error {
	if m, ok := r.mappings[mappingID]; ok {
		m.IsActive = true
		m.Notes = notes
		m.CreatedByID = ownerID
		m.AssignedDate = time.Now()
	}
	return nil
}

func (r *fakeMappingRepo) GetDetailed(ctx context.Context, mappingID uint) (*models.PatientDoctorMapping, error) {
	m, ok := r.mappings[mappingID]
	if !ok {
		return nil, nil
	}
	copied := *m
	if p, _ := r.patientRepo.GetByID(ctx, m.PatientID); p != nil {
		copied.Patient = *p
	}
	if d, _ := r.doctorRepo.GetByID(ctx, m.DoctorID); d != nil {
		copied.Doctor = *d
	}
	return &copied, nil
}

func (r *fakeMappingRepo) ListActiveByOwner(ctx context.Context, ownerID int64) ([]models.PatientDoctorMapping, error) {
	var out []models.PatientDoctorMapping
	for _, m := range r.mappings {
		if m.CreatedByID == ownerID && m.IsActive {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssignedDate.After(out[j].AssignedDate) })
	return out, nil
}

func (r *fakeMappingRepo) ListActiveByPatient(ctx context.Context, patientID uint) ([]models.PatientDoctorMapping, error) {
	var out []models.PatientDoctorMapping
	for _, m := range r.mappings {
		if m.PatientID == patientID && m.IsActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeMappingRepo) Deactivate(ctx context.Context, mappingID uint, ownerID int64) (bool, error) {
	if m, ok := r.mappings[mappingID]; ok && m.CreatedByID == ownerID && m.IsActive {
		m.IsActive = false
		return true, nil
	}
	return false, nil
}

func validPatient(email string) *models.Patient {
	return &models.Patient{
		Name:        "Jane Roe",
		Email:       email,
		Phone:       "+12125551234",
		Address:     "12 Main Street",
		DateOfBirth: "1990-01-15",
		Gender:      "female",
	}
}

func validDoctor(email string) *models.Doctor {
	return &models.Doctor{
		Name:              "Gregory House",
		Email:             email,
		Phone:             "+12125556789",
		Specialization:    "CARDIOLOGY",
		YearsOfExperience: 12,
		Qualification:     "MD",
		ConsultationFee:   45.50,
	}
}
