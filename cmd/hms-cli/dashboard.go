package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/dashboard"
	"github.com/hms/hms/internal/domain/admission"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/domain/pharmacy"
	"github.com/hms/hms/internal/domain/prescription"
	"github.com/hms/hms/internal/domain/staff"
	"github.com/hms/hms/internal/render"
	"github.com/hms/hms/pkg/hmsclient"
)

func dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Render the record lists",
		Long: "Renders every section's list markup, or a single section when\n" +
			"--section is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			sectionID, _ := cmd.Flags().GetString("section")

			client := newClient()
			d, err := dashboard.New(clientSections(client)...)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if sectionID != "" {
				if err := d.ShowSection(ctx, sectionID); err != nil {
					return wrapSessionErr(err)
				}
				return d.Render(os.Stdout)
			}

			if err := d.Refresh(ctx); err != nil {
				return wrapSessionErr(err)
			}
			return d.RenderAll(os.Stdout)
		},
	}
	cmd.Flags().String("section", "", "Section to show (patient, staff, admission, prescription, bill, pharmacy)")
	return cmd
}

// clientSections maps each API collection onto a dashboard section, reusing
// the field descriptors and row projections the server renders with.
func clientSections(client *hmsclient.Client) []dashboard.Section {
	return []dashboard.Section{
		{
			ID:     "patient",
			Label:  "Patient",
			Fields: patient.Fields(),
			Load: func(ctx context.Context) ([]render.Record, error) {
				list, err := client.Patients.List(ctx, hmsclient.ListParams{})
				if err != nil {
					return nil, err
				}
				rows := make([]render.Record, 0, len(list.Data))
				for _, p := range list.Data {
					rows = append(rows, (&patient.Patient{
						ID:            p.ID,
						Name:          p.Name,
						DOB:           p.DOB,
						AdmissionDate: p.AdmissionDate,
					}).ToRow())
				}
				return rows, nil
			},
		},
		{
			ID:     "staff",
			Label:  "Staff",
			Fields: staff.Fields(),
			Load: func(ctx context.Context) ([]render.Record, error) {
				list, err := client.Staff.List(ctx, hmsclient.ListParams{})
				if err != nil {
					return nil, err
				}
				rows := make([]render.Record, 0, len(list.Data))
				for _, m := range list.Data {
					rows = append(rows, (&staff.Member{
						ID:             m.ID,
						Name:           m.Name,
						Role:           m.Role,
						Specialization: m.Specialization,
					}).ToRow())
				}
				return rows, nil
			},
		},
		{
			ID:     "admission",
			Label:  "Admission",
			Fields: admission.Fields(),
			Load: func(ctx context.Context) ([]render.Record, error) {
				list, err := client.Admissions.List(ctx, hmsclient.ListParams{})
				if err != nil {
					return nil, err
				}
				rows := make([]render.Record, 0, len(list.Data))
				for _, a := range list.Data {
					rows = append(rows, (&admission.Admission{
						ID:            a.ID,
						PatientID:     a.PatientID,
						StaffID:       a.StaffID,
						RoomNum:       a.RoomNum,
						DischargeDate: a.DischargeDate,
					}).ToRow())
				}
				return rows, nil
			},
		},
		{
			ID:     "prescription",
			Label:  "Prescription",
			Fields: prescription.Fields(),
			Load: func(ctx context.Context) ([]render.Record, error) {
				list, err := client.Prescriptions.List(ctx, hmsclient.ListParams{})
				if err != nil {
					return nil, err
				}
				rows := make([]render.Record, 0, len(list.Data))
				for _, p := range list.Data {
					rows = append(rows, (&prescription.Prescription{
						ID:          p.ID,
						PatientID:   p.PatientID,
						StaffID:     p.StaffID,
						Medication:  p.Medication,
						Dosage:      p.Dosage,
						PharmacyID:  p.PharmacyID,
						DateWritten: p.DateWritten,
					}).ToRow())
				}
				return rows, nil
			},
		},
		{
			ID:     "bill",
			Label:  "Bill",
			Fields: billing.Fields(),
			Load: func(ctx context.Context) ([]render.Record, error) {
				list, err := client.Bills.List(ctx, hmsclient.ListParams{})
				if err != nil {
					return nil, err
				}
				rows := make([]render.Record, 0, len(list.Data))
				for _, b := range list.Data {
					rows = append(rows, (&billing.Bill{
						ID:            b.ID,
						PatientID:     b.PatientID,
						TotalAmount:   b.TotalAmount,
						PaymentStatus: b.PaymentStatus,
						DateCreated:   b.DateCreated,
					}).ToRow())
				}
				return rows, nil
			},
		},
		{
			ID:     "pharmacy",
			Label:  "Pharmacy",
			Fields: pharmacy.Fields(),
			Load: func(ctx context.Context) ([]render.Record, error) {
				list, err := client.Pharmacies.List(ctx, hmsclient.ListParams{})
				if err != nil {
					return nil, err
				}
				rows := make([]render.Record, 0, len(list.Data))
				for _, p := range list.Data {
					rows = append(rows, (&pharmacy.Pharmacy{
						ID:       p.ID,
						Name:     p.Name,
						Location: p.Location,
					}).ToRow())
				}
				return rows, nil
			},
		},
	}
}
