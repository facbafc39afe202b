package codegraph

// snapshotSchema validates the shape of a snapshot document before
// decoding. It is deliberately permissive about node attributes (graph
// richness varies by source language) and strict about collection
// types, so a malformed export fails loudly instead of decoding into an
// empty graph.
const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "properties": {
    "files": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "path": {"type": "string"},
          "source": {"type": "string"},
          "lines": {"type": "integer", "minimum": 0}
        },
        "required": ["path"]
      }
    },
    "functions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "filepath": {"type": "string"},
          "source": {"type": "string"},
          "parameters": {"type": "array"},
          "return_type": {"type": "string"},
          "docstring": {"type": "string"},
          "decorators": {"type": "array", "items": {"type": "string"}},
          "is_async": {"type": "boolean"},
          "dependencies": {"type": "array"},
          "usages": {"type": "array"},
          "call_sites": {"type": "array"},
          "calls": {"type": "array"}
        },
        "required": ["name"]
      }
    },
    "classes": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "filepath": {"type": "string"},
          "superclasses": {"type": "array", "items": {"type": "string"}},
          "methods": {"type": "array"},
          "attributes": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["name"]
      }
    },
    "symbols": {"type": "array"},
    "imports": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "from_file": {"type": "string"},
          "to_file": {"type": "string"},
          "module": {"type": "string"},
          "dynamic": {"type": "boolean"}
        },
        "required": ["from_file"]
      }
    },
    "global_vars": {"type": "array"},
    "interfaces": {"type": "array"},
    "external_modules": {"type": "array", "items": {"type": "string"}},
    "edges": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "from": {"type": "string"},
          "to": {"type": "string"},
          "kind": {
            "type": "string",
            "enum": ["symbol_usage", "import_symbol_resolution", "export"]
          }
        },
        "required": ["from", "to", "kind"]
      }
    }
  }
}`
