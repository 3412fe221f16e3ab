package mutate

import (
	"context"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/medilink/api/data/model"
	"github.com/medilink/api/internal/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (m *Mutate) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if user.Role == "" {
		user.Role = model.UserRoleApplicant
	}

	res, err := m.mongo.Collection(model.CollectionNameUsers).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user, errors.ErrUserNameTaken()
		}

		return user, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	user.ID = res.InsertedID.(primitive.ObjectID)

	return user, nil
}

type UserProfileUpdate struct {
	Specialization     *string
	YearsOfExperience  *int
	Certifications     []string
	AvailabilityStatus *string
	AvatarImage        *string
	Phone              *string
}

// Validate collects every invalid field instead of failing on the first.
func (u UserProfileUpdate) Validate() error {
	var result *multierror.Error

	if u.Specialization != nil && !contains(model.Specializations, *u.Specialization) {
		result = multierror.Append(result, errors.ErrValidation().SetDetail("unknown specialization %q", *u.Specialization))
	}

	if u.YearsOfExperience != nil && (*u.YearsOfExperience < 0 || *u.YearsOfExperience > 50) {
		result = multierror.Append(result, errors.ErrValidation().SetDetail("years of experience out of range"))
	}

	for _, cert := range u.Certifications {
		if !contains(model.Certifications, cert) {
			result = multierror.Append(result, errors.ErrValidation().SetDetail("unknown certification %q", cert))
		}
	}

	if u.AvailabilityStatus != nil && !contains(model.AvailabilityStatuses, *u.AvailabilityStatus) {
		result = multierror.Append(result, errors.ErrValidation().SetDetail("unknown availability status %q", *u.AvailabilityStatus))
	}

	return result.ErrorOrNil()
}

func (m *Mutate) UpdateUserProfile(ctx context.Context, id primitive.ObjectID, update UserProfileUpdate) (model.User, error) {
	user := model.User{}

	if err := update.Validate(); err != nil {
		return user, errors.ErrValidation().SetDetail(err.Error())
	}

	set := bson.M{
		"updated_at":  time.Now(),
		"last_active": time.Now(),
	}

	if update.Specialization != nil {
		set["specialization"] = *update.Specialization
	}

	if update.YearsOfExperience != nil {
		set["years_of_experience"] = *update.YearsOfExperience
	}

	if update.Certifications != nil {
		set["certifications"] = update.Certifications
	}

	if update.AvailabilityStatus != nil {
		set["availability_status"] = *update.AvailabilityStatus
	}

	if update.AvatarImage != nil {
		set["avatar_image"] = *update.AvatarImage
	}

	if update.Phone != nil {
		set["phone"] = *update.Phone
	}

	err := m.mongo.Collection(model.CollectionNameUsers).FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		findOneAndUpdateReturnAfter(),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errors.ErrUnknownUser()
		}

		return user, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return user, nil
}

// ApproveApplication promotes an applicant to the EMP role.
func (m *Mutate) ApproveApplication(ctx context.Context, id primitive.ObjectID) (model.User, error) {
	user := model.User{}

	err := m.mongo.Collection(model.CollectionNameUsers).FindOneAndUpdate(ctx,
		bson.M{"_id": id, "role": model.UserRoleApplicant},
		bson.M{"$set": bson.M{
			"role":       model.UserRoleEMP,
			"updated_at": time.Now(),
		}},
		findOneAndUpdateReturnAfter(),
	).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return user, errors.ErrUnknownUser().SetDetail("no pending application")
		}

		return user, errors.ErrStoreUnavailable().SetDetail(err.Error())
	}

	return user, nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}

	return false
}
