package services

import (
	"gorm.io/gorm"

	"digicheese-backend/models"
)

// ClientService is the access layer for the client registry. Every method
// runs as its own committed unit; a missing row surfaces as
// gorm.ErrRecordNotFound and is never fatal.
type ClientService struct {
	DB *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{DB: db}
}

func (s *ClientService) GetAll() ([]models.Client, error) {
	var clients []models.Client
	err := s.DB.Find(&clients).Error
	return clients, err
}

func (s *ClientService) GetByID(id uint) (models.Client, error) {
	var client models.Client
	err := s.DB.First(&client, id).Error
	return client, err
}

func (s *ClientService) Create(in models.ClientCreate) (models.Client, error) {
	client := models.NewClient(in)
	err := s.DB.Create(&client).Error
	return client, err
}

// Patch loads the row, overwrites only the supplied fields and saves.
// fields must already have passed models.ValidatePatch.
func (s *ClientService) Patch(id uint, fields map[string]any) (models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		return models.Client{}, err
	}
	client.ApplyPatch(fields)
	err := s.DB.Save(&client).Error
	return client, err
}

// Delete removes the row and returns its last-known values.
func (s *ClientService) Delete(id uint) (models.Client, error) {
	var client models.Client
	if err := s.DB.First(&client, id).Error; err != nil {
		return models.Client{}, err
	}
	if err := s.DB.Delete(&client).Error; err != nil {
		return models.Client{}, err
	}
	return client, nil
}
