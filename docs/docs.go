// Package docs holds the OpenAPI document served by the Swagger UI.
// Keep it in sync with the godoc annotations on the handlers.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/atletas/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Atletas"],
                "summary": "Consultar todos os atletas",
                "parameters": [
                    {"type": "string", "description": "Identificador", "name": "id", "in": "query"},
                    {"type": "string", "description": "CPF", "name": "cpf", "in": "query"},
                    {"type": "string", "description": "Parte do nome", "name": "nome", "in": "query"},
                    {"type": "integer", "description": "Página", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Itens por página", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PageAtleta"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Atletas"],
                "summary": "Criar um novo atleta",
                "parameters": [
                    {"description": "Atleta", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CriarAtletaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.AtletaResponse"}},
                    "303": {"description": "CPF já cadastrado", "schema": {"$ref": "#/definitions/apierror.APIError"}},
                    "400": {"description": "Categoria ou centro inexistente", "schema": {"$ref": "#/definitions/apierror.APIError"}},
                    "422": {"description": "Erro de validação", "schema": {"$ref": "#/definitions/apierror.ValidationError"}}
                }
            }
        },
        "/atletas/by": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Atletas"],
                "summary": "Consultar um atleta por id, cpf ou nome",
                "parameters": [
                    {"type": "string", "name": "id", "in": "query"},
                    {"type": "string", "name": "cpf", "in": "query"},
                    {"type": "string", "name": "nome", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AtletaResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/atletas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Atletas"],
                "summary": "Consultar um atleta pelo id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AtletaResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Atletas"],
                "summary": "Editar um atleta pelo id",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.AtualizarAtletaRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.AtletaResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            },
            "delete": {
                "tags": ["Atletas"],
                "summary": "Deletar um atleta pelo id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/categorias/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categorias"],
                "summary": "Consultar todas as categorias",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PageCategoria"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categorias"],
                "summary": "Criar nova categoria",
                "parameters": [
                    {"description": "Categoria", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CriarCategoriaRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CategoriaResponse"}},
                    "303": {"description": "Nome já cadastrado", "schema": {"$ref": "#/definitions/apierror.APIError"}},
                    "422": {"description": "Erro de validação", "schema": {"$ref": "#/definitions/apierror.ValidationError"}}
                }
            }
        },
        "/categorias/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categorias"],
                "summary": "Consultar uma categoria pelo id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CategoriaResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/centros_treinamento/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Centros de Treinamento"],
                "summary": "Consultar todos os centros de treinamento",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.PageCentroTreinamento"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Centros de Treinamento"],
                "summary": "Cria um novo centro de treinamento",
                "parameters": [
                    {"description": "Centro de treinamento", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CriarCentroTreinamentoRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dto.CentroTreinamentoResponse"}},
                    "303": {"description": "Nome já cadastrado", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/centros_treinamento/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Centros de Treinamento"],
                "summary": "Consultar um centro de treinamento pelo id",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CentroTreinamentoResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/apierror.APIError"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Estado da aplicação e do banco",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        }
    },
    "definitions": {
        "apierror.APIError": {
            "type": "object",
            "properties": {"detail": {"type": "string"}}
        },
        "apierror.ValidationError": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "dto.CategoriaRef": {
            "type": "object",
            "required": ["nome"],
            "properties": {"nome": {"type": "string", "maxLength": 50, "example": "Scale"}}
        },
        "dto.CentroTreinamentoRef": {
            "type": "object",
            "required": ["nome"],
            "properties": {"nome": {"type": "string", "maxLength": 20, "example": "CT King"}}
        },
        "dto.CriarCategoriaRequest": {
            "type": "object",
            "required": ["nome"],
            "properties": {"nome": {"type": "string", "maxLength": 50, "example": "Scale"}}
        },
        "dto.CategoriaResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "nome": {"type": "string"}
            }
        },
        "dto.CriarCentroTreinamentoRequest": {
            "type": "object",
            "required": ["nome", "endereco", "proprietario"],
            "properties": {
                "nome": {"type": "string", "maxLength": 20, "example": "CT King"},
                "endereco": {"type": "string", "maxLength": 60, "example": "Rua 1, 123"},
                "proprietario": {"type": "string", "maxLength": 30, "example": "João"}
            }
        },
        "dto.CentroTreinamentoResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "nome": {"type": "string"},
                "endereco": {"type": "string"},
                "proprietario": {"type": "string"}
            }
        },
        "dto.CriarAtletaRequest": {
            "type": "object",
            "required": ["nome", "cpf", "idade", "peso", "altura", "sexo", "categoria", "centro_treinamento"],
            "properties": {
                "nome": {"type": "string", "maxLength": 100, "example": "João da Silva"},
                "cpf": {"type": "string", "maxLength": 11, "example": "12345678900"},
                "idade": {"type": "integer", "minimum": 0, "example": 25},
                "peso": {"type": "number", "example": 75.5},
                "altura": {"type": "number", "example": 1.75},
                "sexo": {"type": "string", "maxLength": 1, "example": "M"},
                "categoria": {"$ref": "#/definitions/dto.CategoriaRef"},
                "centro_treinamento": {"$ref": "#/definitions/dto.CentroTreinamentoRef"}
            }
        },
        "dto.AtualizarAtletaRequest": {
            "type": "object",
            "properties": {
                "nome": {"type": "string", "maxLength": 100},
                "idade": {"type": "integer", "minimum": 0},
                "peso": {"type": "number"},
                "altura": {"type": "number"},
                "sexo": {"type": "string", "maxLength": 1}
            }
        },
        "dto.AtletaResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "created_at": {"type": "string", "format": "date-time"},
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "idade": {"type": "integer"},
                "peso": {"type": "number"},
                "altura": {"type": "number"},
                "sexo": {"type": "string"},
                "categoria": {"$ref": "#/definitions/dto.CategoriaRef"},
                "centro_treinamento": {"$ref": "#/definitions/dto.CentroTreinamentoRef"}
            }
        },
        "dto.PageAtleta": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.AtletaResponse"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "dto.PageCategoria": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.CategoriaResponse"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        },
        "dto.PageCentroTreinamento": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.CentroTreinamentoResponse"}},
                "total": {"type": "integer"},
                "page": {"type": "integer"},
                "size": {"type": "integer"},
                "pages": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Workout API",
	Description:      "Cadastro de atletas, categorias e centros de treinamento.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
