// Package repositories implements per-entity CRUD over the key-value store.
package repositories

import (
	"github.com/mvsilva/adapta/internal/kvstore"
)

// Key prefixes shared by all backends. Adaptations and reports are scoped
// under their student so a single prefix scan answers the per-student
// listings and the cascade delete.
const (
	userKeyPrefix       = "user:"
	userEmailKeyPrefix  = "useremail:"
	studentKeyPrefix    = "student:"
	adaptationKeyPrefix = "adaptation:"
	reportKeyPrefix     = "report:"
)

func userKey(id string) string { return userKeyPrefix + id }

func userEmailKey(email string) string { return userEmailKeyPrefix + email }

func studentKey(id string) string { return studentKeyPrefix + id }

func adaptationKey(studentID, id string) string {
	return adaptationKeyPrefix + studentID + ":" + id
}

func adaptationPrefix(studentID string) string {
	return adaptationKeyPrefix + studentID + ":"
}

func reportKey(studentID, id string) string {
	return reportKeyPrefix + studentID + ":" + id
}

func reportPrefix(studentID string) string {
	return reportKeyPrefix + studentID + ":"
}

// Repositories is the container for all application repositories
type Repositories struct {
	UserRepository       *UserRepository
	StudentRepository    *StudentRepository
	AdaptationRepository *AdaptationRepository
	ReportRepository     *ReportRepository
}

// NewRepositories creates all repositories over the active store
func NewRepositories(store kvstore.Store) *Repositories {
	adaptationRepo := NewAdaptationRepository(store)
	reportRepo := NewReportRepository(store)

	return &Repositories{
		UserRepository:       NewUserRepository(store),
		StudentRepository:    NewStudentRepository(store, adaptationRepo, reportRepo),
		AdaptationRepository: adaptationRepo,
		ReportRepository:     reportRepo,
	}
}
