package services

import (
	"errors"
	"log"

	"github.com/Massiue/HealthyMealPlanner/models"

	"gorm.io/gorm"
)

// ErrMealNotFound is returned when an update or delete names a persisted
// meal id that does not exist. No partial mutation happens in that case.
var ErrMealNotFound = errors.New("meal not found")

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// MergeCatalog produces the single global meal list every other component
// reads: persisted meals first, then the seed meals the overlay has neither
// deleted nor converted, de-duplicated by id with the first occurrence
// winning. Ordering is significant for display precedence.
func MergeCatalog(persisted, seed []models.Meal, overlay []models.SeedMealStatus) []models.Meal {
	hidden := make(map[string]bool, len(overlay))
	for _, st := range overlay {
		if st.Deleted || st.ConvertedMealID != nil {
			hidden[st.SeedID] = true
		}
	}

	merged := make([]models.Meal, 0, len(persisted)+len(seed))
	seen := make(map[string]bool, len(persisted)+len(seed))
	for _, m := range persisted {
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		merged = append(merged, m)
	}
	for _, m := range seed {
		if hidden[m.ID] || seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		merged = append(merged, m)
	}
	return merged
}

// ListEffective returns the merged global meal list. When either database
// read fails the catalog degrades to the seed list alone so meal browsing
// keeps working instead of erroring out.
func (s *CatalogService) ListEffective() []models.Meal {
	var rows []models.CatalogMeal
	if err := s.db.Order("id").Find(&rows).Error; err != nil {
		log.Printf("catalog read failed, serving seed meals only: %v", err)
		return SeedMeals()
	}
	var overlay []models.SeedMealStatus
	if err := s.db.Find(&overlay).Error; err != nil {
		log.Printf("seed overlay read failed, serving seed meals only: %v", err)
		return SeedMeals()
	}

	persisted := make([]models.Meal, 0, len(rows))
	for i := range rows {
		persisted = append(persisted, rows[i].AsMeal())
	}
	return MergeCatalog(persisted, SeedMeals(), overlay)
}

// MealInput carries the editable fields of a catalog meal.
type MealInput struct {
	Name     string          `json:"mealName"`
	Type     models.MealType `json:"mealType"`
	Calories int             `json:"calories"`
	Protein  int             `json:"protein"`
	DietTag  string          `json:"dietTag"`
	ImageURL string          `json:"imageUrl"`
}

// CreateMeal adds a new persisted catalog meal. The returned meal carries
// the fresh id, which is immediately usable in a seed conversion.
func (s *CatalogService) CreateMeal(in MealInput) (models.Meal, error) {
	row := models.CatalogMeal{
		Name:     in.Name,
		Type:     string(in.Type),
		Calories: in.Calories,
		Protein:  in.Protein,
		DietTag:  in.DietTag,
		ImageURL: in.ImageURL,
	}
	if row.ImageURL == "" {
		row.ImageURL = models.DefaultMealImage
	}
	if err := s.db.Create(&row).Error; err != nil {
		return models.Meal{}, err
	}
	return row.AsMeal(), nil
}

// UpdateMeal replaces the fields of a persisted meal in place.
func (s *CatalogService) UpdateMeal(id uint, in MealInput) (models.Meal, error) {
	var row models.CatalogMeal
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Meal{}, ErrMealNotFound
		}
		return models.Meal{}, err
	}

	row.Name = in.Name
	row.Type = string(in.Type)
	row.Calories = in.Calories
	row.Protein = in.Protein
	row.DietTag = in.DietTag
	if in.ImageURL != "" {
		row.ImageURL = in.ImageURL
	}

	if err := s.db.Save(&row).Error; err != nil {
		return models.Meal{}, err
	}
	return row.AsMeal(), nil
}

// DeleteMeal removes a persisted meal from the catalog.
func (s *CatalogService) DeleteMeal(id uint) error {
	res := s.db.Delete(&models.CatalogMeal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}

// MarkSeedDeleted hides a seed meal from the merged catalog. The seed list
// itself has no backing mutable store, so deletion is an overlay flag.
func (s *CatalogService) MarkSeedDeleted(seedID string) error {
	return s.upsertSeedStatus(seedID, func(st *models.SeedMealStatus) {
		st.Deleted = true
	})
}

// ConvertSeedMeal records that a seed meal now lives in the persisted
// catalog under mealID. The merge step drops the seed stand-in from then on
// so the meal never shows up twice.
func (s *CatalogService) ConvertSeedMeal(seedID string, mealID uint) error {
	return s.upsertSeedStatus(seedID, func(st *models.SeedMealStatus) {
		st.ConvertedMealID = &mealID
	})
}

// SeedStatuses lists the overlay rows. The admin dashboard uses these to
// badge converted meals.
func (s *CatalogService) SeedStatuses() ([]models.SeedMealStatus, error) {
	var rows []models.SeedMealStatus
	err := s.db.Order("seed_id").Find(&rows).Error
	return rows, err
}

func (s *CatalogService) upsertSeedStatus(seedID string, apply func(*models.SeedMealStatus)) error {
	var st models.SeedMealStatus
	err := s.db.Where("seed_id = ?", seedID).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		st = models.SeedMealStatus{SeedID: seedID}
		apply(&st)
		return s.db.Create(&st).Error
	}
	if err != nil {
		return err
	}
	apply(&st)
	return s.db.Save(&st).Error
}
