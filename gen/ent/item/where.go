// Code generated by ent, DO NOT EDIT.

package item

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/smartjects/importer/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTitle, v))
}

// Mission applies equality check predicate on the "mission" field. It's identical to MissionEQ.
func Mission(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMission, v))
}

// Problematics applies equality check predicate on the "problematics" field. It's identical to ProblematicsEQ.
func Problematics(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldProblematics, v))
}

// Scope applies equality check predicate on the "scope" field. It's identical to ScopeEQ.
func Scope(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldScope, v))
}

// Audience applies equality check predicate on the "audience" field. It's identical to AudienceEQ.
func Audience(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudience, v))
}

// HowItWorks applies equality check predicate on the "how_it_works" field. It's identical to HowItWorksEQ.
func HowItWorks(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldHowItWorks, v))
}

// Architecture applies equality check predicate on the "architecture" field. It's identical to ArchitectureEQ.
func Architecture(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldArchitecture, v))
}

// Innovation applies equality check predicate on the "innovation" field. It's identical to InnovationEQ.
func Innovation(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldInnovation, v))
}

// UseCase applies equality check predicate on the "use_case" field. It's identical to UseCaseEQ.
func UseCase(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUseCase, v))
}

// ImageURL applies equality check predicate on the "image_url" field. It's identical to ImageURLEQ.
func ImageURL(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldImageURL, v))
}

// Link applies equality check predicate on the "link" field. It's identical to LinkEQ.
func Link(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLink, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldTitle, v))
}

// MissionEQ applies the EQ predicate on the "mission" field.
func MissionEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldMission, v))
}

// MissionNEQ applies the NEQ predicate on the "mission" field.
func MissionNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldMission, v))
}

// MissionIn applies the In predicate on the "mission" field.
func MissionIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldMission, vs...))
}

// MissionNotIn applies the NotIn predicate on the "mission" field.
func MissionNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldMission, vs...))
}

// MissionGT applies the GT predicate on the "mission" field.
func MissionGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldMission, v))
}

// MissionGTE applies the GTE predicate on the "mission" field.
func MissionGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldMission, v))
}

// MissionLT applies the LT predicate on the "mission" field.
func MissionLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldMission, v))
}

// MissionLTE applies the LTE predicate on the "mission" field.
func MissionLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldMission, v))
}

// MissionContains applies the Contains predicate on the "mission" field.
func MissionContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldMission, v))
}

// MissionHasPrefix applies the HasPrefix predicate on the "mission" field.
func MissionHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldMission, v))
}

// MissionHasSuffix applies the HasSuffix predicate on the "mission" field.
func MissionHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldMission, v))
}

// MissionIsNil applies the IsNil predicate on the "mission" field.
func MissionIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldMission))
}

// MissionNotNil applies the NotNil predicate on the "mission" field.
func MissionNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldMission))
}

// MissionEqualFold applies the EqualFold predicate on the "mission" field.
func MissionEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldMission, v))
}

// MissionContainsFold applies the ContainsFold predicate on the "mission" field.
func MissionContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldMission, v))
}

// ProblematicsEQ applies the EQ predicate on the "problematics" field.
func ProblematicsEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldProblematics, v))
}

// ProblematicsNEQ applies the NEQ predicate on the "problematics" field.
func ProblematicsNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldProblematics, v))
}

// ProblematicsIn applies the In predicate on the "problematics" field.
func ProblematicsIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldProblematics, vs...))
}

// ProblematicsNotIn applies the NotIn predicate on the "problematics" field.
func ProblematicsNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldProblematics, vs...))
}

// ProblematicsGT applies the GT predicate on the "problematics" field.
func ProblematicsGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldProblematics, v))
}

// ProblematicsGTE applies the GTE predicate on the "problematics" field.
func ProblematicsGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldProblematics, v))
}

// ProblematicsLT applies the LT predicate on the "problematics" field.
func ProblematicsLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldProblematics, v))
}

// ProblematicsLTE applies the LTE predicate on the "problematics" field.
func ProblematicsLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldProblematics, v))
}

// ProblematicsContains applies the Contains predicate on the "problematics" field.
func ProblematicsContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldProblematics, v))
}

// ProblematicsHasPrefix applies the HasPrefix predicate on the "problematics" field.
func ProblematicsHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldProblematics, v))
}

// ProblematicsHasSuffix applies the HasSuffix predicate on the "problematics" field.
func ProblematicsHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldProblematics, v))
}

// ProblematicsIsNil applies the IsNil predicate on the "problematics" field.
func ProblematicsIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldProblematics))
}

// ProblematicsNotNil applies the NotNil predicate on the "problematics" field.
func ProblematicsNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldProblematics))
}

// ProblematicsEqualFold applies the EqualFold predicate on the "problematics" field.
func ProblematicsEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldProblematics, v))
}

// ProblematicsContainsFold applies the ContainsFold predicate on the "problematics" field.
func ProblematicsContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldProblematics, v))
}

// ScopeEQ applies the EQ predicate on the "scope" field.
func ScopeEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldScope, v))
}

// ScopeNEQ applies the NEQ predicate on the "scope" field.
func ScopeNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldScope, v))
}

// ScopeIn applies the In predicate on the "scope" field.
func ScopeIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldScope, vs...))
}

// ScopeNotIn applies the NotIn predicate on the "scope" field.
func ScopeNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldScope, vs...))
}

// ScopeGT applies the GT predicate on the "scope" field.
func ScopeGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldScope, v))
}

// ScopeGTE applies the GTE predicate on the "scope" field.
func ScopeGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldScope, v))
}

// ScopeLT applies the LT predicate on the "scope" field.
func ScopeLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldScope, v))
}

// ScopeLTE applies the LTE predicate on the "scope" field.
func ScopeLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldScope, v))
}

// ScopeContains applies the Contains predicate on the "scope" field.
func ScopeContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldScope, v))
}

// ScopeHasPrefix applies the HasPrefix predicate on the "scope" field.
func ScopeHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldScope, v))
}

// ScopeHasSuffix applies the HasSuffix predicate on the "scope" field.
func ScopeHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldScope, v))
}

// ScopeIsNil applies the IsNil predicate on the "scope" field.
func ScopeIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldScope))
}

// ScopeNotNil applies the NotNil predicate on the "scope" field.
func ScopeNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldScope))
}

// ScopeEqualFold applies the EqualFold predicate on the "scope" field.
func ScopeEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldScope, v))
}

// ScopeContainsFold applies the ContainsFold predicate on the "scope" field.
func ScopeContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldScope, v))
}

// AudienceEQ applies the EQ predicate on the "audience" field.
func AudienceEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldAudience, v))
}

// AudienceNEQ applies the NEQ predicate on the "audience" field.
func AudienceNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldAudience, v))
}

// AudienceIn applies the In predicate on the "audience" field.
func AudienceIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldAudience, vs...))
}

// AudienceNotIn applies the NotIn predicate on the "audience" field.
func AudienceNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldAudience, vs...))
}

// AudienceGT applies the GT predicate on the "audience" field.
func AudienceGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldAudience, v))
}

// AudienceGTE applies the GTE predicate on the "audience" field.
func AudienceGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldAudience, v))
}

// AudienceLT applies the LT predicate on the "audience" field.
func AudienceLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldAudience, v))
}

// AudienceLTE applies the LTE predicate on the "audience" field.
func AudienceLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldAudience, v))
}

// AudienceContains applies the Contains predicate on the "audience" field.
func AudienceContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldAudience, v))
}

// AudienceHasPrefix applies the HasPrefix predicate on the "audience" field.
func AudienceHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldAudience, v))
}

// AudienceHasSuffix applies the HasSuffix predicate on the "audience" field.
func AudienceHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldAudience, v))
}

// AudienceIsNil applies the IsNil predicate on the "audience" field.
func AudienceIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldAudience))
}

// AudienceNotNil applies the NotNil predicate on the "audience" field.
func AudienceNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldAudience))
}

// AudienceEqualFold applies the EqualFold predicate on the "audience" field.
func AudienceEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldAudience, v))
}

// AudienceContainsFold applies the ContainsFold predicate on the "audience" field.
func AudienceContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldAudience, v))
}

// HowItWorksEQ applies the EQ predicate on the "how_it_works" field.
func HowItWorksEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldHowItWorks, v))
}

// HowItWorksNEQ applies the NEQ predicate on the "how_it_works" field.
func HowItWorksNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldHowItWorks, v))
}

// HowItWorksIn applies the In predicate on the "how_it_works" field.
func HowItWorksIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldHowItWorks, vs...))
}

// HowItWorksNotIn applies the NotIn predicate on the "how_it_works" field.
func HowItWorksNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldHowItWorks, vs...))
}

// HowItWorksGT applies the GT predicate on the "how_it_works" field.
func HowItWorksGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldHowItWorks, v))
}

// HowItWorksGTE applies the GTE predicate on the "how_it_works" field.
func HowItWorksGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldHowItWorks, v))
}

// HowItWorksLT applies the LT predicate on the "how_it_works" field.
func HowItWorksLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldHowItWorks, v))
}

// HowItWorksLTE applies the LTE predicate on the "how_it_works" field.
func HowItWorksLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldHowItWorks, v))
}

// HowItWorksContains applies the Contains predicate on the "how_it_works" field.
func HowItWorksContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldHowItWorks, v))
}

// HowItWorksHasPrefix applies the HasPrefix predicate on the "how_it_works" field.
func HowItWorksHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldHowItWorks, v))
}

// HowItWorksHasSuffix applies the HasSuffix predicate on the "how_it_works" field.
func HowItWorksHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldHowItWorks, v))
}

// HowItWorksIsNil applies the IsNil predicate on the "how_it_works" field.
func HowItWorksIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldHowItWorks))
}

// HowItWorksNotNil applies the NotNil predicate on the "how_it_works" field.
func HowItWorksNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldHowItWorks))
}

// HowItWorksEqualFold applies the EqualFold predicate on the "how_it_works" field.
func HowItWorksEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldHowItWorks, v))
}

// HowItWorksContainsFold applies the ContainsFold predicate on the "how_it_works" field.
func HowItWorksContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldHowItWorks, v))
}

// ArchitectureEQ applies the EQ predicate on the "architecture" field.
func ArchitectureEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldArchitecture, v))
}

// ArchitectureNEQ applies the NEQ predicate on the "architecture" field.
func ArchitectureNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldArchitecture, v))
}

// ArchitectureIn applies the In predicate on the "architecture" field.
func ArchitectureIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldArchitecture, vs...))
}

// ArchitectureNotIn applies the NotIn predicate on the "architecture" field.
func ArchitectureNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldArchitecture, vs...))
}

// ArchitectureGT applies the GT predicate on the "architecture" field.
func ArchitectureGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldArchitecture, v))
}

// ArchitectureGTE applies the GTE predicate on the "architecture" field.
func ArchitectureGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldArchitecture, v))
}

// ArchitectureLT applies the LT predicate on the "architecture" field.
func ArchitectureLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldArchitecture, v))
}

// ArchitectureLTE applies the LTE predicate on the "architecture" field.
func ArchitectureLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldArchitecture, v))
}

// ArchitectureContains applies the Contains predicate on the "architecture" field.
func ArchitectureContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldArchitecture, v))
}

// ArchitectureHasPrefix applies the HasPrefix predicate on the "architecture" field.
func ArchitectureHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldArchitecture, v))
}

// ArchitectureHasSuffix applies the HasSuffix predicate on the "architecture" field.
func ArchitectureHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldArchitecture, v))
}

// ArchitectureIsNil applies the IsNil predicate on the "architecture" field.
func ArchitectureIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldArchitecture))
}

// ArchitectureNotNil applies the NotNil predicate on the "architecture" field.
func ArchitectureNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldArchitecture))
}

// ArchitectureEqualFold applies the EqualFold predicate on the "architecture" field.
func ArchitectureEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldArchitecture, v))
}

// ArchitectureContainsFold applies the ContainsFold predicate on the "architecture" field.
func ArchitectureContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldArchitecture, v))
}

// InnovationEQ applies the EQ predicate on the "innovation" field.
func InnovationEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldInnovation, v))
}

// InnovationNEQ applies the NEQ predicate on the "innovation" field.
func InnovationNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldInnovation, v))
}

// InnovationIn applies the In predicate on the "innovation" field.
func InnovationIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldInnovation, vs...))
}

// InnovationNotIn applies the NotIn predicate on the "innovation" field.
func InnovationNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldInnovation, vs...))
}

// InnovationGT applies the GT predicate on the "innovation" field.
func InnovationGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldInnovation, v))
}

// InnovationGTE applies the GTE predicate on the "innovation" field.
func InnovationGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldInnovation, v))
}

// InnovationLT applies the LT predicate on the "innovation" field.
func InnovationLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldInnovation, v))
}

// InnovationLTE applies the LTE predicate on the "innovation" field.
func InnovationLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldInnovation, v))
}

// InnovationContains applies the Contains predicate on the "innovation" field.
func InnovationContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldInnovation, v))
}

// InnovationHasPrefix applies the HasPrefix predicate on the "innovation" field.
func InnovationHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldInnovation, v))
}

// InnovationHasSuffix applies the HasSuffix predicate on the "innovation" field.
func InnovationHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldInnovation, v))
}

// InnovationIsNil applies the IsNil predicate on the "innovation" field.
func InnovationIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldInnovation))
}

// InnovationNotNil applies the NotNil predicate on the "innovation" field.
func InnovationNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldInnovation))
}

// InnovationEqualFold applies the EqualFold predicate on the "innovation" field.
func InnovationEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldInnovation, v))
}

// InnovationContainsFold applies the ContainsFold predicate on the "innovation" field.
func InnovationContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldInnovation, v))
}

// UseCaseEQ applies the EQ predicate on the "use_case" field.
func UseCaseEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUseCase, v))
}

// UseCaseNEQ applies the NEQ predicate on the "use_case" field.
func UseCaseNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldUseCase, v))
}

// UseCaseIn applies the In predicate on the "use_case" field.
func UseCaseIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldUseCase, vs...))
}

// UseCaseNotIn applies the NotIn predicate on the "use_case" field.
func UseCaseNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldUseCase, vs...))
}

// UseCaseGT applies the GT predicate on the "use_case" field.
func UseCaseGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldUseCase, v))
}

// UseCaseGTE applies the GTE predicate on the "use_case" field.
func UseCaseGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldUseCase, v))
}

// UseCaseLT applies the LT predicate on the "use_case" field.
func UseCaseLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldUseCase, v))
}

// UseCaseLTE applies the LTE predicate on the "use_case" field.
func UseCaseLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldUseCase, v))
}

// UseCaseContains applies the Contains predicate on the "use_case" field.
func UseCaseContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldUseCase, v))
}

// UseCaseHasPrefix applies the HasPrefix predicate on the "use_case" field.
func UseCaseHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldUseCase, v))
}

// UseCaseHasSuffix applies the HasSuffix predicate on the "use_case" field.
func UseCaseHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldUseCase, v))
}

// UseCaseIsNil applies the IsNil predicate on the "use_case" field.
func UseCaseIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldUseCase))
}

// UseCaseNotNil applies the NotNil predicate on the "use_case" field.
func UseCaseNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldUseCase))
}

// UseCaseEqualFold applies the EqualFold predicate on the "use_case" field.
func UseCaseEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldUseCase, v))
}

// UseCaseContainsFold applies the ContainsFold predicate on the "use_case" field.
func UseCaseContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldUseCase, v))
}

// ImageURLEQ applies the EQ predicate on the "image_url" field.
func ImageURLEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldImageURL, v))
}

// ImageURLNEQ applies the NEQ predicate on the "image_url" field.
func ImageURLNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldImageURL, v))
}

// ImageURLIn applies the In predicate on the "image_url" field.
func ImageURLIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldImageURL, vs...))
}

// ImageURLNotIn applies the NotIn predicate on the "image_url" field.
func ImageURLNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldImageURL, vs...))
}

// ImageURLGT applies the GT predicate on the "image_url" field.
func ImageURLGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldImageURL, v))
}

// ImageURLGTE applies the GTE predicate on the "image_url" field.
func ImageURLGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldImageURL, v))
}

// ImageURLLT applies the LT predicate on the "image_url" field.
func ImageURLLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldImageURL, v))
}

// ImageURLLTE applies the LTE predicate on the "image_url" field.
func ImageURLLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldImageURL, v))
}

// ImageURLContains applies the Contains predicate on the "image_url" field.
func ImageURLContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldImageURL, v))
}

// ImageURLHasPrefix applies the HasPrefix predicate on the "image_url" field.
func ImageURLHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldImageURL, v))
}

// ImageURLHasSuffix applies the HasSuffix predicate on the "image_url" field.
func ImageURLHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldImageURL, v))
}

// ImageURLIsNil applies the IsNil predicate on the "image_url" field.
func ImageURLIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldImageURL))
}

// ImageURLNotNil applies the NotNil predicate on the "image_url" field.
func ImageURLNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldImageURL))
}

// ImageURLEqualFold applies the EqualFold predicate on the "image_url" field.
func ImageURLEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldImageURL, v))
}

// ImageURLContainsFold applies the ContainsFold predicate on the "image_url" field.
func ImageURLContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldImageURL, v))
}

// TeamIsNil applies the IsNil predicate on the "team" field.
func TeamIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldTeam))
}

// TeamNotNil applies the NotNil predicate on the "team" field.
func TeamNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldTeam))
}

// LinkEQ applies the EQ predicate on the "link" field.
func LinkEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldLink, v))
}

// LinkNEQ applies the NEQ predicate on the "link" field.
func LinkNEQ(v string) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldLink, v))
}

// LinkIn applies the In predicate on the "link" field.
func LinkIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldLink, vs...))
}

// LinkNotIn applies the NotIn predicate on the "link" field.
func LinkNotIn(vs ...string) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldLink, vs...))
}

// LinkGT applies the GT predicate on the "link" field.
func LinkGT(v string) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldLink, v))
}

// LinkGTE applies the GTE predicate on the "link" field.
func LinkGTE(v string) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldLink, v))
}

// LinkLT applies the LT predicate on the "link" field.
func LinkLT(v string) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldLink, v))
}

// LinkLTE applies the LTE predicate on the "link" field.
func LinkLTE(v string) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldLink, v))
}

// LinkContains applies the Contains predicate on the "link" field.
func LinkContains(v string) predicate.Item {
	return predicate.Item(sql.FieldContains(FieldLink, v))
}

// LinkHasPrefix applies the HasPrefix predicate on the "link" field.
func LinkHasPrefix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasPrefix(FieldLink, v))
}

// LinkHasSuffix applies the HasSuffix predicate on the "link" field.
func LinkHasSuffix(v string) predicate.Item {
	return predicate.Item(sql.FieldHasSuffix(FieldLink, v))
}

// LinkIsNil applies the IsNil predicate on the "link" field.
func LinkIsNil() predicate.Item {
	return predicate.Item(sql.FieldIsNull(FieldLink))
}

// LinkNotNil applies the NotNil predicate on the "link" field.
func LinkNotNil() predicate.Item {
	return predicate.Item(sql.FieldNotNull(FieldLink))
}

// LinkEqualFold applies the EqualFold predicate on the "link" field.
func LinkEqualFold(v string) predicate.Item {
	return predicate.Item(sql.FieldEqualFold(FieldLink, v))
}

// LinkContainsFold applies the ContainsFold predicate on the "link" field.
func LinkContainsFold(v string) predicate.Item {
	return predicate.Item(sql.FieldContainsFold(FieldLink, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Item {
	return predicate.Item(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Item {
	return predicate.Item(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIndustries applies the HasEdge predicate on the "industries" edge.
func HasIndustries() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, IndustriesTable, IndustriesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIndustriesWith applies the HasEdge predicate on the "industries" edge with a given conditions (other predicates).
func HasIndustriesWith(preds ...predicate.Industry) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newIndustriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAudiences applies the HasEdge predicate on the "audiences" edge.
func HasAudiences() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, AudiencesTable, AudiencesPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAudiencesWith applies the HasEdge predicate on the "audiences" edge with a given conditions (other predicates).
func HasAudiencesWith(preds ...predicate.Audience) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newAudiencesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFunctions applies the HasEdge predicate on the "functions" edge.
func HasFunctions() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, FunctionsTable, FunctionsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFunctionsWith applies the HasEdge predicate on the "functions" edge with a given conditions (other predicates).
func HasFunctionsWith(preds ...predicate.BusinessFunction) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newFunctionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTeams applies the HasEdge predicate on the "teams" edge.
func HasTeams() predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, TeamsTable, TeamsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTeamsWith applies the HasEdge predicate on the "teams" edge with a given conditions (other predicates).
func HasTeamsWith(preds ...predicate.Team) predicate.Item {
	return predicate.Item(func(s *sql.Selector) {
		step := newTeamsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Item) predicate.Item {
	return predicate.Item(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Item) predicate.Item {
	return predicate.Item(sql.NotPredicates(p))
}
