// Package sandbox seeds the in-memory store with demo data. It fills the
// pharmacy dropdown at startup and can generate reproducible synthetic
// patients and staff for developer on-boarding and UI demos.
package sandbox

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/pharmacy"
	"github.com/hms/hms/internal/domain/staff"
)

// SeedConfig controls the volume of generated synthetic data.
type SeedConfig struct {
	PatientCount int
	StaffCount   int
	Seed         int64
}

// DefaultSeedConfig returns a SeedConfig with modest demo defaults.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		PatientCount: 5,
		StaffCount:   3,
	}
}

var (
	firstNames = []string{
		"James", "Mary", "Robert", "Patricia", "John", "Jennifer",
		"Michael", "Linda", "David", "Elizabeth", "William", "Susan",
		"Richard", "Jessica", "Joseph", "Sarah", "Thomas", "Karen",
		"Daniel", "Emily",
	}
	lastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Wilson", "Anderson",
		"Taylor", "Thomas", "Moore", "Jackson", "Martin", "Lee",
	}
	staffRoles = []struct {
		Role           string
		Specialization string
	}{
		{"Doctor", "Cardiology"},
		{"Doctor", "Pediatrics"},
		{"Doctor", "Oncology"},
		{"Nurse", "Emergency"},
		{"Nurse", "ICU"},
		{"Surgeon", "Orthopedics"},
	}
)

// Seeder writes demo records through the domain services so that IDs come
// from the same sequences as user-created records.
type Seeder struct {
	patients   *patient.Service
	staff      *staff.Service
	pharmacies *pharmacy.Service
	logger     zerolog.Logger
	rng        *rand.Rand
}

// NewSeeder returns a seeder. If seed is 0 a time-based seed is chosen.
func NewSeeder(patients *patient.Service, members *staff.Service, pharmacies *pharmacy.Service, logger zerolog.Logger, seed int64) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		patients:   patients,
		staff:      members,
		pharmacies: pharmacies,
		logger:     logger,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// SeedPharmacies registers the fixed pharmacy locations. These always exist
// so prescription forms have a dropdown to draw from.
func (s *Seeder) SeedPharmacies(ctx context.Context) error {
	fixtures := []pharmacy.CreateInput{
		{Name: "City Central Pharmacy", Location: "12 Main St"},
		{Name: "Bayview Pharmacy", Location: "4 Harbor Rd"},
	}
	for _, in := range fixtures {
		p, err := s.pharmacies.Register(ctx, in)
		if err != nil {
			return fmt.Errorf("seeding pharmacy %q: %w", in.Name, err)
		}
		s.logger.Info().Str("id", p.ID).Str("name", p.Name).Msg("seeded pharmacy")
	}
	return nil
}

// SeedDemoData generates synthetic patients and staff members.
func (s *Seeder) SeedDemoData(ctx context.Context, cfg SeedConfig) error {
	for i := 0; i < cfg.PatientCount; i++ {
		p, err := s.patients.Register(ctx, patient.CreateInput{
			Name:          s.fullName(),
			DOB:           s.randomDate(1940, 2005),
			AdmissionDate: s.randomDate(2023, 2024),
		})
		if err != nil {
			return fmt.Errorf("seeding patient: %w", err)
		}
		s.logger.Debug().Str("id", p.ID).Msg("seeded patient")
	}

	for i := 0; i < cfg.StaffCount; i++ {
		role := staffRoles[s.rng.Intn(len(staffRoles))]
		m, err := s.staff.Register(ctx, staff.CreateInput{
			Name:           s.fullName(),
			Role:           role.Role,
			Specialization: role.Specialization,
		})
		if err != nil {
			return fmt.Errorf("seeding staff member: %w", err)
		}
		s.logger.Debug().Str("id", m.ID).Msg("seeded staff member")
	}

	s.logger.Info().
		Int("patients", cfg.PatientCount).
		Int("staff", cfg.StaffCount).
		Msg("seeded demo data")
	return nil
}

func (s *Seeder) fullName() string {
	return firstNames[s.rng.Intn(len(firstNames))] + " " + lastNames[s.rng.Intn(len(lastNames))]
}

func (s *Seeder) randomDate(minYear, maxYear int) string {
	y := minYear + s.rng.Intn(maxYear-minYear+1)
	m := 1 + s.rng.Intn(12)
	d := 1 + s.rng.Intn(28) // safe for all months
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
