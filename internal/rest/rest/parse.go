package rest

import (
	"strconv"

	"github.com/medilink/api/internal/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Param struct {
	v interface{}
}

func (c *Ctx) UserValue(key Key) *Param {
	return &Param{c.RequestCtx.UserValue(string(key))}
}

// String returns a string value of the param
func (p *Param) String() (string, bool) {
	if p.v == nil {
		return "", false
	}
	var s string
	switch t := p.v.(type) {
	case string:
		s = t
	default:
		return "", false
	}

	return s, true
}

// Int parses the param into an int
func (p *Param) Int() (int, error) {
	s, ok := p.String()
	if !ok {
		return 0, errors.ErrMissingField()
	}

	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.ErrBadInt().SetDetail(err.Error())
	}
	return i, nil
}

// ObjectID parses the param into an Object ID
func (p *Param) ObjectID() (primitive.ObjectID, error) {
	s, _ := p.String()
	if s == "" || !primitive.IsValidObjectID(s) {
		return primitive.NilObjectID, errors.ErrBadObjectID()
	}

	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, errors.ErrBadObjectID().SetDetail(err.Error())
	}

	return oid, nil
}
