package services

import (
	"CareLink/utils"
	"context"
	"testing"
)

func TestDoctorEmailUniqueGlobally(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewDoctorService(repo)
	ctx := context.Background()

	if err := svc.Create(ctx, 1, validDoctor("doc@x.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	// Uniqueness holds across accounts, unlike patients.
	err := svc.Create(ctx, 2, validDoctor("doc@x.com"))
	if !utils.IsKind(err, utils.KindValidation) {
		t.Errorf("expected validation error for duplicate email, got %v", err)
	}
}

func TestDoctorCreateValidation(t *testing.T) {
	svc := NewDoctorService(newFakeDoctorRepo())
	ctx := context.Background()

	bad := validDoctor("doc@x.com")
	bad.YearsOfExperience = 51
	if err := svc.Create(ctx, 1, bad); !utils.IsKind(err, utils.KindValidation) {
		t.Errorf("experience 51: expected validation error, got %v", err)
	}

	bad = validDoctor("doc@x.com")
	bad.ConsultationFee = 0
	if err := svc.Create(ctx, 1, bad); !utils.IsKind(err, utils.KindValidation) {
		t.Errorf("fee 0: expected validation error, got %v", err)
	}

	bad = validDoctor("doc@x.com")
	bad.Specialization = "ASTROLOGY"
	if err := svc.Create(ctx, 1, bad); !utils.IsKind(err, utils.KindValidation) {
		t.Errorf("unknown specialization: expected validation error, got %v", err)
	}

	ok := validDoctor("doc@x.com")
	ok.ConsultationFee = 45.50
	if err := svc.Create(ctx, 1, ok); err != nil {
		t.Errorf("valid doctor rejected: %v", err)
	}
}

func TestDoctorMutationRestrictedToCreator(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewDoctorService(repo)
	ctx := context.Background()

	doctor := validDoctor("doc@x.com")
	if err := svc.Create(ctx, 1, doctor); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Anyone may read.
	if _, err := svc.Get(ctx, doctor.ID); err != nil {
		t.Errorf("get by non-creator failed: %v", err)
	}

	// Only the creator may write; others get a permission error, not a 404.
	doctor.Name = "Updated Name"
	if err := svc.Update(ctx, 2, doctor); !utils.IsKind(err, utils.KindPermission) {
		t.Errorf("update: expected permission error, got %v", err)
	}
	if err := svc.Delete(ctx, 2, doctor.ID); !utils.IsKind(err, utils.KindPermission) {
		t.Errorf("delete: expected permission error, got %v", err)
	}

	if err := svc.Update(ctx, 1, doctor); err != nil {
		t.Errorf("creator update failed: %v", err)
	}
	if err := svc.Delete(ctx, 1, doctor.ID); err != nil {
		t.Errorf("creator delete failed: %v", err)
	}
}

func TestDoctorListIsShared(t *testing.T) {
	repo := newFakeDoctorRepo()
	svc := NewDoctorService(repo)
	ctx := context.Background()

	if err := svc.Create(ctx, 1, validDoctor("a@x.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Create(ctx, 2, validDoctor("b@x.com")); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("list length = %d, want 2 regardless of creator", len(all))
	}
}

func TestDoctorGetMissing(t *testing.T) {
	svc := NewDoctorService(newFakeDoctorRepo())

	if _, err := svc.Get(context.Background(), 99); !utils.IsKind(err, utils.KindNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
