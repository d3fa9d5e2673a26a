package handler

import (
	"fmt"
	"math"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/auth"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
)

func invalidArgument(format string, args ...any) error {
	return status.Error(codes.InvalidArgument, fmt.Sprintf(format, args...))
}

func stringField(req *structpb.Struct, name string) (string, bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return "", false, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return "", false, nil
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return "", false, invalidArgument("%s must be a string", name)
	}
	return s.StringValue, true, nil
}

func boolField(req *structpb.Struct, name string) (bool, bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return false, false, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return false, false, nil
	}
	b, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		return false, false, invalidArgument("%s must be a boolean", name)
	}
	return b.BoolValue, true, nil
}

func intField(req *structpb.Struct, name string) (int, bool, error) {
	v, ok := req.GetFields()[name]
	if !ok {
		return 0, false, nil
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return 0, false, nil
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber || n.NumberValue != math.Trunc(n.NumberValue) {
		return 0, false, invalidArgument("%s must be an integer", name)
	}
	return int(n.NumberValue), true, nil
}

func requiredID(req *structpb.Struct) (string, error) {
	id, _, err := stringField(req, "id")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(id) == "" {
		return "", invalidArgument("id is required")
	}
	return id, nil
}

func toFilters(req *structpb.Struct) (employee.Filters, error) {
	var f employee.Filters
	var err error
	if f.Search, _, err = stringField(req, "search"); err != nil {
		return f, err
	}
	if f.Gender, _, err = stringField(req, "gender"); err != nil {
		return f, err
	}
	if f.Status, _, err = stringField(req, "status"); err != nil {
		return f, err
	}
	return f, nil
}

func toFields(req *structpb.Struct) (employee.Fields, error) {
	var fields employee.Fields
	var err error
	if fields.FullName, _, err = stringField(req, "fullName"); err != nil {
		return fields, err
	}
	gender, _, err := stringField(req, "gender")
	if err != nil {
		return fields, err
	}
	fields.Gender = employee.Gender(gender)
	if fields.DateOfBirth, _, err = stringField(req, "dateOfBirth"); err != nil {
		return fields, err
	}
	if fields.State, _, err = stringField(req, "state"); err != nil {
		return fields, err
	}
	active, set, err := boolField(req, "isActive")
	if err != nil {
		return fields, err
	}
	fields.IsActive = active || !set
	if fields.ProfileImage, _, err = stringField(req, "profileImage"); err != nil {
		return fields, err
	}
	return fields, nil
}

func toPatch(req *structpb.Struct) (employee.Patch, error) {
	var patch employee.Patch
	for _, name := range []string{"fullName", "dateOfBirth", "state", "profileImage"} {
		v, set, err := stringField(req, name)
		if err != nil {
			return patch, err
		}
		if !set {
			continue
		}
		value := v
		switch name {
		case "fullName":
			patch.FullName = &value
		case "dateOfBirth":
			patch.DateOfBirth = &value
		case "state":
			patch.State = &value
		case "profileImage":
			patch.ProfileImage = &value
		}
	}

	gender, set, err := stringField(req, "gender")
	if err != nil {
		return patch, err
	}
	if set {
		g := employee.Gender(gender)
		patch.Gender = &g
	}

	active, set, err := boolField(req, "isActive")
	if err != nil {
		return patch, err
	}
	if set {
		patch.IsActive = &active
	}
	return patch, nil
}

func employeeValue(e *employee.Employee) map[string]interface{} {
	m := map[string]interface{}{
		"id":          e.ID,
		"fullName":    e.FullName,
		"gender":      string(e.Gender),
		"dateOfBirth": e.DateOfBirth,
		"state":       e.State,
		"isActive":    e.IsActive,
		"createdAt":   e.CreatedAt.UTC().Format(time.RFC3339Nano),
		"updatedAt":   e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if e.ProfileImage != "" {
		m["profileImage"] = e.ProfileImage
	}
	return m
}

func employeeList(list []*employee.Employee) []interface{} {
	out := make([]interface{}, 0, len(list))
	for _, e := range list {
		if e == nil {
			continue
		}
		out = append(out, employeeValue(e))
	}
	return out
}

func statsValue(s employee.Stats) map[string]interface{} {
	return map[string]interface{}{
		"total":    s.Total,
		"active":   s.Active,
		"inactive": s.Inactive,
	}
}

func userValue(u *auth.User) interface{} {
	if u == nil {
		return nil
	}
	return map[string]interface{}{"email": u.Email, "name": u.Name}
}

func newResponse(m map[string]interface{}) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode response: %v", err))
	}
	return s, nil
}
