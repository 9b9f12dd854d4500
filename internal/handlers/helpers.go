package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/isamardev/graphify/internal/content"
	"github.com/isamardev/graphify/internal/httpx"

	"github.com/go-playground/validator/v10"
)

func decodeJSON(r *http.Request, v interface{}) error {
	return httpx.DecodeJSON(r.Body, v)
}

func decodeLooseBody(r *http.Request, v *map[string]interface{}) error {
	return httpx.DecodeLooseJSON(r.Body, v)
}

func validationDetails(errs validator.ValidationErrors) map[string]string {
	return httpx.ValidationDetails(errs)
}

// docToRaw flattens a decoded BSON document into the plain-interface shape
// the normalizers understand: _id becomes id, driver types become strings
// and []interface{} values.
func docToRaw(doc bson.M) content.Raw {
	raw := make(content.Raw, len(doc)+1)
	for k, v := range doc {
		raw[k] = flattenBSON(v)
	}
	if id, ok := raw["_id"]; ok {
		raw["id"] = id
		delete(raw, "_id")
	}
	return raw
}

func flattenBSON(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.ObjectID:
		return val.Hex()
	case primitive.A:
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = flattenBSON(item)
		}
		return items
	case bson.M:
		inner := make(map[string]interface{}, len(val))
		for k, item := range val {
			inner[k] = flattenBSON(item)
		}
		return inner
	case bson.D:
		inner := make(map[string]interface{}, len(val))
		for _, elem := range val {
			inner[elem.Key] = flattenBSON(elem.Value)
		}
		return inner
	case primitive.DateTime:
		return val.Time()
	case int32:
		return int(val)
	case int64:
		return int(val)
	default:
		return v
	}
}

// entityToRaw round-trips a normalized entity through JSON so the local
// store can keep it the way the admin panel stored records.
func entityToRaw(e content.Entity) (content.Raw, error) {
	buf, err := json.Marshal(e)
	if err != nil {
		return nil, err
	}
	var raw content.Raw
	if err := json.Unmarshal(buf, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// entityToSet builds the $set document for an update, leaving identity
// alone.
func entityToSet(e content.Entity) (bson.M, error) {
	buf, err := bson.Marshal(e)
	if err != nil {
		return nil, err
	}
	var set bson.M
	if err := bson.Unmarshal(buf, &set); err != nil {
		return nil, err
	}
	delete(set, "_id")
	return set, nil
}

// formToRaw flattens a parsed multipart (or urlencoded) form into a raw
// document; file parts are handled separately by the caller.
func formToRaw(r *http.Request) content.Raw {
	raw := content.Raw{}
	if r.MultipartForm != nil {
		for key, values := range r.MultipartForm.Value {
			if key == "_method" || len(values) == 0 {
				continue
			}
			raw[key] = values[0]
		}
		return raw
	}
	for key, values := range r.PostForm {
		if key == "_method" || len(values) == 0 {
			continue
		}
		raw[key] = values[0]
	}
	return raw
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
