package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestLocationLifecycle(t *testing.T) {
	svc := NewLocationService(&memLocations{})
	ctx := context.Background()

	created, err := svc.Create(ctx, NewLocation{Name: "  Greenwich ", Latitude: 51.48, Longitude: 0, Timezone: "UTC"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if created.Name != "Greenwich" {
		t.Errorf("name = %q, want trimmed", created.Name)
	}

	loc, err := Resolve(ctx, svc, created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if loc.Latitude != 51.48 || loc.Timezone != "UTC" {
		t.Errorf("resolved = %+v", loc)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get after delete = %v", err)
	}
	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("delete unknown = %v", err)
	}
}

func TestLocationValidation(t *testing.T) {
	bortle := 12
	tests := []struct {
		name string
		in   NewLocation
	}{
		{"no name", NewLocation{Latitude: 10, Longitude: 10, Timezone: "UTC"}},
		{"latitude", NewLocation{Name: "x", Latitude: 91, Timezone: "UTC"}},
		{"longitude", NewLocation{Name: "x", Longitude: -181, Timezone: "UTC"}},
		{"timezone", NewLocation{Name: "x", Timezone: "Mars/Olympus_Mons"}},
		{"bortle", NewLocation{Name: "x", Timezone: "UTC", Bortle: &bortle}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocationService(&memLocations{}).Create(context.Background(), tt.in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}
