package snapshot

// snapshotSchema validates the wire shape of a caller snapshot before
// decoding. Field-level semantics (thresholds, expiry) are the engine's
// concern; the schema only rejects structurally malformed input.
const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version", "caller_id"],
  "properties": {
    "schema_version": {"type": "string", "pattern": "^v[0-9]+\\.[0-9]+\\.[0-9]+$"},
    "caller_id": {"type": "string", "minLength": 1},
    "playbook_id": {"type": "string"},
    "interaction_count": {"type": "integer", "minimum": 0},
    "last_interaction_at": {"type": "string"},
    "parameters": {"type": "array", "items": {"type": "object", "required": ["id"]}},
    "targets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["parameter_id", "scope", "value"],
        "properties": {
          "parameter_id": {"type": "string", "minLength": 1},
          "scope": {"enum": ["SYSTEM", "DOMAIN", "PLAYBOOK", "CALLER_SEGMENT"]},
          "value": {"type": "number", "minimum": 0, "maximum": 1},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    },
    "caller_targets": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["parameter_id", "value"],
        "properties": {
          "value": {"type": "number", "minimum": 0, "maximum": 1},
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    },
    "modules": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["slug", "name", "position"],
        "properties": {
          "slug": {"type": "string", "minLength": 1},
          "position": {"type": "integer", "minimum": 0}
        }
      }
    },
    "attributes": {
      "type": "array",
      "items": {"type": "object", "required": ["key", "value"]}
    },
    "memories": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "key"],
        "properties": {
          "confidence": {"type": "number", "minimum": 0, "maximum": 1}
        }
      }
    }
  }
}`
