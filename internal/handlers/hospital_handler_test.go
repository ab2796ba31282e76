package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"medico-backend/internal/models"
)

func TestHospitalCreateDedupAndCapitalize(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	// Whitespace/case variants of one service collapse into a single link
	w := doJSON(r, http.MethodPost, "/hopital", `{"nom":"CHU","services":["Radiologie"," radiologie "]}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d (%s)", w.Code, w.Body.String())
	}

	w2 := doGet(r, "/hopital")
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w2.Code)
	}
	var payload struct {
		Hopitaux map[string][]string `json:"hopitaux"`
	}
	if err := json.Unmarshal(w2.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	services := payload.Hopitaux["CHU"]
	if len(services) != 1 || services[0] != "Radiologie" {
		t.Fatalf("expected single capitalized entry, got %v", services)
	}
}

func TestHospitalServiceUpsertSharedAcrossHospitals(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	if w := doJSON(r, http.MethodPost, "/hopital", `{"nom":"CHU Kamenge","services":["Cardiology"]}`); w.Code != http.StatusCreated {
		t.Fatalf("first hospital: expected 201 got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/hopital", `{"nom":"CHU Roi Khaled","services":["Cardiology"]}`); w.Code != http.StatusCreated {
		t.Fatalf("second hospital: expected 201 got %d", w.Code)
	}

	// Exactly one service row, lowercased
	var services []models.Service
	if err := db.Find(&services).Error; err != nil {
		t.Fatalf("find services: %v", err)
	}
	if len(services) != 1 || services[0].Name != "cardiology" {
		t.Fatalf("expected one 'cardiology' row, got %+v", services)
	}

	// Linked to both hospitals
	var hospitals []models.Hospital
	if err := db.Preload("Services").Find(&hospitals).Error; err != nil {
		t.Fatalf("find hospitals: %v", err)
	}
	if len(hospitals) != 2 {
		t.Fatalf("expected 2 hospitals, got %d", len(hospitals))
	}
	for _, h := range hospitals {
		if len(h.Services) != 1 || h.Services[0].ID != services[0].ID {
			t.Fatalf("hospital %q not linked to shared service: %+v", h.Name, h.Services)
		}
	}
}

func TestHospitalLinksExistingService(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	// Explicitly created service keeps its description when linked later
	if w := doJSON(r, http.MethodPost, "/service", `{"nom":"radiologie","description":"Imaging"}`); w.Code != http.StatusCreated {
		t.Fatalf("service: expected 201 got %d", w.Code)
	}
	if w := doJSON(r, http.MethodPost, "/hopital", `{"nom":"CHU","services":["Radiologie"]}`); w.Code != http.StatusCreated {
		t.Fatalf("hospital: expected 201 got %d", w.Code)
	}

	var services []models.Service
	db.Find(&services)
	if len(services) != 1 {
		t.Fatalf("expected 1 service row, got %d", len(services))
	}
	if services[0].Description != "Imaging" {
		t.Fatalf("description lost on link: %+v", services[0])
	}
}

func TestHospitalDuplicateNameConflict(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	if w := doJSON(r, http.MethodPost, "/hopital", `{"nom":"CHU"}`); w.Code != http.StatusCreated {
		t.Fatalf("first: expected 201 got %d", w.Code)
	}
	w := doJSON(r, http.MethodPost, "/hopital", `{"nom":"CHU","services":["radiologie"]}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("dup: expected 409 got %d (%s)", w.Code, w.Body.String())
	}

	// The rejected request must not have created service rows either
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no service rows after rollback, got %d", count)
	}
}

func TestHospitalCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	if w := doJSON(r, http.MethodPost, "/hopital", `{"adresse":"Avenue de l'Hopital"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("missing nom: expected 400 got %d", w.Code)
	}
}
