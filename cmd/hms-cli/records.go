package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hms/hms/pkg/hmsclient"
)

func patientCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patient",
		Short: "Register and list patients",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			dob, _ := cmd.Flags().GetString("dob")
			admitted, _ := cmd.Flags().GetString("admission-date")

			p, err := newClient().Patients.Create(context.Background(), hmsclient.PatientParams{
				Name:          name,
				DOB:           dob,
				AdmissionDate: admitted,
			})
			if err != nil {
				return wrapSessionErr(err)
			}
			fmt.Printf("Patient %s registered with ID: %s\n", p.Name, p.ID)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "Full name")
	addCmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	addCmd.Flags().String("admission-date", "", "Admission date (YYYY-MM-DD)")
	addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().Patients.List(context.Background(), hmsclient.ListParams{})
			if err != nil {
				return wrapSessionErr(err)
			}
			for _, p := range list.Data {
				fmt.Printf("%s  %s  dob=%s  admitted=%s\n", p.ID, p.Name, p.DOB, p.AdmissionDate)
			}
			fmt.Printf("%d patient(s)\n", list.Total)
			return nil
		},
	})

	return cmd
}

func staffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Register and list staff members",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			role, _ := cmd.Flags().GetString("role")
			specialization, _ := cmd.Flags().GetString("specialization")

			m, err := newClient().Staff.Create(context.Background(), hmsclient.StaffParams{
				Name:           name,
				Role:           role,
				Specialization: specialization,
			})
			if err != nil {
				return wrapSessionErr(err)
			}
			fmt.Printf("Staff member %s registered with ID: %s\n", m.Name, m.ID)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "Full name")
	addCmd.Flags().String("role", "", "Role (Doctor, Nurse, ...)")
	addCmd.Flags().String("specialization", "", "Specialization")
	addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List staff members",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().Staff.List(context.Background(), hmsclient.ListParams{})
			if err != nil {
				return wrapSessionErr(err)
			}
			for _, m := range list.Data {
				fmt.Printf("%s  %s  role=%s  specialization=%s\n", m.ID, m.Name, m.Role, m.Specialization)
			}
			fmt.Printf("%d staff member(s)\n", list.Total)
			return nil
		},
	})

	return cmd
}

func admissionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admission",
		Short: "Record and list admissions",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record an admission",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			staffID, _ := cmd.Flags().GetString("staff")
			room, _ := cmd.Flags().GetString("room")
			discharge, _ := cmd.Flags().GetString("discharge-date")

			a, err := newClient().Admissions.Create(context.Background(), hmsclient.AdmissionParams{
				PatientID:     patientID,
				StaffID:       staffID,
				RoomNum:       room,
				DischargeDate: discharge,
			})
			if err != nil {
				return wrapSessionErr(err)
			}
			fmt.Printf("Admission recorded with ID: %s (patient %s, room %s)\n", a.ID, a.PatientID, a.RoomNum)
			return nil
		},
	}
	addCmd.Flags().String("patient", "", "Patient ID (e.g. P1001)")
	addCmd.Flags().String("staff", "", "Attending staff ID (e.g. S2001)")
	addCmd.Flags().String("room", "", "Room number")
	addCmd.Flags().String("discharge-date", "", "Discharge date, blank while admitted")
	addCmd.MarkFlagRequired("patient")
	addCmd.MarkFlagRequired("staff")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List admissions",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().Admissions.List(context.Background(), hmsclient.ListParams{})
			if err != nil {
				return wrapSessionErr(err)
			}
			for _, a := range list.Data {
				fmt.Printf("%s  patient=%s  staff=%s  room=%s  discharge=%s\n",
					a.ID, a.PatientID, a.StaffID, a.RoomNum, a.DischargeDate)
			}
			fmt.Printf("%d admission(s)\n", list.Total)
			return nil
		},
	})

	return cmd
}

func prescriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prescription",
		Short: "Write and list prescriptions",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Write a prescription",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			staffID, _ := cmd.Flags().GetString("staff")
			medication, _ := cmd.Flags().GetString("medication")
			dosage, _ := cmd.Flags().GetString("dosage")
			pharmacyID, _ := cmd.Flags().GetString("pharmacy")

			p, err := newClient().Prescriptions.Create(context.Background(), hmsclient.PrescriptionParams{
				PatientID:  patientID,
				StaffID:    staffID,
				Medication: medication,
				Dosage:     dosage,
				PharmacyID: pharmacyID,
			})
			if err != nil {
				return wrapSessionErr(err)
			}
			fmt.Printf("Prescription recorded with ID: %s (%s for patient %s)\n", p.ID, p.Medication, p.PatientID)
			return nil
		},
	}
	addCmd.Flags().String("patient", "", "Patient ID")
	addCmd.Flags().String("staff", "", "Prescribing staff ID")
	addCmd.Flags().String("medication", "", "Medication name")
	addCmd.Flags().String("dosage", "", "Dosage instructions")
	addCmd.Flags().String("pharmacy", "", "Dispensing pharmacy ID")
	addCmd.MarkFlagRequired("patient")
	addCmd.MarkFlagRequired("medication")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().Prescriptions.List(context.Background(), hmsclient.ListParams{})
			if err != nil {
				return wrapSessionErr(err)
			}
			for _, p := range list.Data {
				fmt.Printf("%s  patient=%s  %s %s  pharmacy=%s  written=%s\n",
					p.ID, p.PatientID, p.Medication, p.Dosage, p.PharmacyID, p.DateWritten)
			}
			fmt.Printf("%d prescription(s)\n", list.Total)
			return nil
		},
	})

	return cmd
}

func billCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bill",
		Short: "Create and list bills",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Create a bill",
		RunE: func(cmd *cobra.Command, args []string) error {
			patientID, _ := cmd.Flags().GetString("patient")
			amount, _ := cmd.Flags().GetString("amount")
			status, _ := cmd.Flags().GetString("status")

			b, err := newClient().Bills.Create(context.Background(), hmsclient.BillParams{
				PatientID:     patientID,
				TotalAmount:   amount,
				PaymentStatus: status,
			})
			if err != nil {
				return wrapSessionErr(err)
			}
			fmt.Printf("Bill created with ID: %s (%s, %s)\n", b.ID, b.TotalAmount, b.PaymentStatus)
			return nil
		},
	}
	addCmd.Flags().String("patient", "", "Patient ID")
	addCmd.Flags().String("amount", "", "Total amount, e.g. 150.00")
	addCmd.Flags().String("status", "", "Payment status (defaults to Pending)")
	addCmd.MarkFlagRequired("patient")
	addCmd.MarkFlagRequired("amount")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bills",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().Bills.List(context.Background(), hmsclient.ListParams{})
			if err != nil {
				return wrapSessionErr(err)
			}
			for _, b := range list.Data {
				fmt.Printf("%s  patient=%s  %s  %s  created=%s\n",
					b.ID, b.PatientID, b.TotalAmount, b.PaymentStatus, b.DateCreated)
			}
			fmt.Printf("%d bill(s)\n", list.Total)
			return nil
		},
	})

	return cmd
}

func pharmacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pharmacy",
		Short: "Register and list pharmacies",
	}

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Register a pharmacy",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			location, _ := cmd.Flags().GetString("location")

			p, err := newClient().Pharmacies.Create(context.Background(), hmsclient.PharmacyParams{
				Name:     name,
				Location: location,
			})
			if err != nil {
				return wrapSessionErr(err)
			}
			fmt.Printf("Pharmacy %s registered with ID: %s\n", p.Name, p.ID)
			return nil
		},
	}
	addCmd.Flags().String("name", "", "Pharmacy name")
	addCmd.Flags().String("location", "", "Street address")
	addCmd.MarkFlagRequired("name")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List pharmacies",
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := newClient().Pharmacies.List(context.Background(), hmsclient.ListParams{})
			if err != nil {
				return wrapSessionErr(err)
			}
			for _, p := range list.Data {
				fmt.Printf("%s  %s  %s\n", p.ID, p.Name, p.Location)
			}
			fmt.Printf("%d pharmacy(ies)\n", list.Total)
			return nil
		},
	})

	return cmd
}
