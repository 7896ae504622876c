// Package api holds the OpenAPI description of the backend for swag.
package api

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
        "/": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                },
                "summary": "API root",
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        },
        "/healthz": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            },
            "get": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.httpError"
                        }
                    }
                },
                "summary": "Get health",
                "description": "Returns the application health and, if not healthy, an error",
                "tags": [
                    "General"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                },
                "summary": "v1 API",
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ]
            },
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ]
            }
        },
        "/v1/auth/login": {
            "post": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                },
                "summary": "Login",
                "description": "Starts a session and sets the session cookie",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.LoginEditable"
                        }
                    }
                ]
            }
        },
        "/v1/auth/logout": {
            "post": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Logout",
                "description": "Ends the session and expires the session cookie",
                "tags": [
                    "Auth"
                ]
            }
        },
        "/v1/auth/me": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                },
                "summary": "Current user",
                "description": "Returns the user of the session",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/auth/register": {
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                },
                "summary": "Register",
                "description": "Creates a user with the default categories and logs them in",
                "tags": [
                    "Auth"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.RegisterEditable"
                        }
                    }
                ]
            }
        },
        "/v1/categories": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryCreateResponse"
                        }
                    }
                },
                "summary": "Create categories",
                "description": "Creates new categories",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Categories",
                        "name": "categories",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.CategoryEditable"
                            }
                        }
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryListResponse"
                        }
                    }
                },
                "summary": "Get categories",
                "description": "Returns the categories of the user, ordered by type and name",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Filter by type, income or expense",
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by name",
                        "name": "name",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Search for this text in the name",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    }
                ]
            }
        },
        "/v1/categories/{id}": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Categories"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                },
                "summary": "Get category",
                "description": "Returns a specific category",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryResponse"
                        }
                    }
                },
                "summary": "Update category",
                "description": "Update an existing category. Only values to be updated need to be specified. The type cannot be changed.",
                "tags": [
                    "Categories"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryEditable"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Delete category",
                "description": "Deletes a category. Categories that are used by transactions cannot be deleted.",
                "tags": [
                    "Categories"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/v1/dashboard": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Dashboard"
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.DashboardResponse"
                        }
                    }
                },
                "summary": "Get dashboard",
                "description": "Totals and expenses are limited to the month if one is given; the trend always covers the last 30 days.",
                "tags": [
                    "Dashboard"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Month, 1 to 12. Requires year",
                        "name": "month",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Year. Requires month",
                        "name": "year",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ]
            }
        },
        "/v1/export": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Export"
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Export",
                "description": "Returns an XLSX workbook with the transactions of the month, all savings targets and a summary",
                "tags": [
                    "Export"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "parameters": [
                    {
                        "description": "Month, 1 to 12. Requires year",
                        "name": "month",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Year. Requires month",
                        "name": "year",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ]
            }
        },
        "/v1/profile": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Profile"
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                },
                "summary": "Get profile",
                "description": "Returns the profile of the logged in user",
                "tags": [
                    "Profile"
                ],
                "produces": [
                    "application/json"
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                },
                "summary": "Update profile",
                "description": "Updates the username, image or password. Only values to be updated need to be specified.",
                "tags": [
                    "Profile"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Profile",
                        "name": "profile",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ProfileEditable"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Delete profile",
                "description": "Deletes the user with all categories, transactions and savings targets",
                "tags": [
                    "Profile"
                ],
                "parameters": [
                    {
                        "description": "Password confirmation",
                        "name": "password",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ProfileDelete"
                        }
                    }
                ]
            }
        },
        "/v1/targets": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Targets"
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetCreateResponse"
                        }
                    }
                },
                "summary": "Create savings targets",
                "description": "Creates new savings targets. The current amount starts at the initial investment.",
                "tags": [
                    "Targets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Savings targets",
                        "name": "targets",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TargetEditable"
                            }
                        }
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetListResponse"
                        }
                    }
                },
                "summary": "Get savings targets",
                "description": "Returns the savings targets of the user with their metrics, ordered by target date",
                "tags": [
                    "Targets"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/targets/summary": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Targets"
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetSummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetSummaryResponse"
                        }
                    }
                },
                "summary": "Get savings target summary",
                "description": "Returns the aggregate of all savings targets of the user",
                "tags": [
                    "Targets"
                ],
                "produces": [
                    "application/json"
                ]
            }
        },
        "/v1/targets/{id}": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Targets"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    }
                },
                "summary": "Get savings target",
                "description": "Returns a specific savings target with its metrics",
                "tags": [
                    "Targets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetResponse"
                        }
                    }
                },
                "summary": "Update savings target",
                "description": "Updates an existing savings target. Only values to be updated need to be specified. The current amount is not changed.",
                "tags": [
                    "Targets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Savings target",
                        "name": "target",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TargetEditable"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Delete savings target",
                "description": "Deletes a savings target with all of its allocations. The transactions that funded them are kept.",
                "tags": [
                    "Targets"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/v1/targets/{id}/allocations": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Targets"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetAllocationListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetAllocationListResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetAllocationListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TargetAllocationListResponse"
                        }
                    }
                },
                "summary": "Get allocations of a savings target",
                "description": "Returns the allocations to a savings target, newest first, with the transactions that funded them",
                "tags": [
                    "Targets"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/v1/transactions": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionListResponse"
                        }
                    }
                },
                "summary": "Get transactions",
                "description": "Returns a list of transactions, newest first",
                "tags": [
                    "Transactions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Filter by type, income or expense",
                        "name": "type",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by category ID",
                        "name": "category",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Filter by month of the date, 1 to 12. Requires year",
                        "name": "month",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Filter by year of the date. Requires month",
                        "name": "year",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Transactions at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.",
                        "name": "fromDate",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Transactions before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.",
                        "name": "untilDate",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "Search for this text in the description",
                        "name": "search",
                        "in": "query",
                        "required": false,
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first Transaction returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of Transactions to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query",
                        "required": false,
                        "type": "integer"
                    }
                ]
            },
            "post": {
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionCreateResponse"
                        }
                    }
                },
                "summary": "Create transactions",
                "description": "Creates transactions. Income transactions can allocate a share of their amount to a savings target.",
                "tags": [
                    "Transactions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Transactions",
                        "name": "transactions",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.TransactionCreate"
                            }
                        }
                    }
                ]
            }
        },
        "/v1/transactions/{id}": {
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Transactions"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                },
                "summary": "Get transaction",
                "description": "Returns a specific transaction",
                "tags": [
                    "Transactions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            },
            "patch": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionResponse"
                        }
                    }
                },
                "summary": "Update transaction",
                "description": "Updates an existing transaction. Only values to be updated need to be specified. An existing allocation keeps its amount.",
                "tags": [
                    "Transactions"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.TransactionEditable"
                        }
                    }
                ]
            },
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                },
                "summary": "Delete transaction",
                "description": "Deletes a transaction. If a share of it was allocated to a savings target, the allocation is removed from the target.",
                "tags": [
                    "Transactions"
                ],
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ]
            }
        },
        "/version": {
            "get": {
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                },
                "summary": "API version",
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ]
            },
            "options": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "Allowed HTTP verbs",
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ]
            }
        }
    },
    "definitions": {
        "dashboard.CategoryExpense": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string"
                },
                "amount": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                }
            }
        },
        "dashboard.Day": {
            "type": "object",
            "properties": {
                "date": {
                    "type": "string",
                    "description": "YYYY-MM-DD"
                },
                "income": {
                    "type": "string"
                },
                "expense": {
                    "type": "string"
                },
                "savings": {
                    "type": "string",
                    "description": "income minus expense, at least 0"
                }
            }
        },
        "dashboard.Level": {
            "type": "object",
            "properties": {
                "current": {
                    "$ref": "#/definitions/dashboard.Stage"
                },
                "next": {
                    "$ref": "#/definitions/dashboard.Stage"
                },
                "progress": {
                    "type": "string",
                    "description": "percent of the way to the next stage"
                }
            }
        },
        "dashboard.Stage": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "emoji": {
                    "type": "string"
                },
                "start": {
                    "type": "string",
                    "description": "lower bound, inclusive"
                },
                "advice": {
                    "type": "string"
                },
                "focus": {
                    "type": "string"
                }
            }
        },
        "healthz.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "sql: database is closed"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Health of the backend",
                    "example": "https://example.com/api/healthz"
                },
                "version": {
                    "type": "string",
                    "description": "Endpoint returning the version of the backend",
                    "example": "https://example.com/api/version"
                },
                "metrics": {
                    "type": "string",
                    "description": "Endpoint returning Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "type": "string",
                    "description": "List endpoint for all v1 endpoints",
                    "example": "https://example.com/api/v1"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "the running version of the backend",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/router.VersionObject"
                }
            }
        },
        "savings.Challenge": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "targetAmount": {
                    "type": "string"
                },
                "reward": {
                    "type": "string"
                },
                "days": {
                    "type": "integer"
                }
            }
        },
        "savings.Copy": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "subtext": {
                    "type": "string"
                },
                "emoji": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                }
            }
        },
        "savings.Metrics": {
            "type": "object",
            "properties": {
                "progressPercent": {
                    "type": "string"
                },
                "remainingAmount": {
                    "type": "string"
                },
                "avgMonthlySaving": {
                    "type": "string"
                },
                "etaInMonths": {
                    "type": "string"
                },
                "doNothingETA": {
                    "type": "string"
                },
                "speedStatus": {
                    "type": "string"
                },
                "targetStatus": {
                    "type": "string"
                },
                "isOnTrack": {
                    "type": "boolean"
                }
            }
        },
        "savings.Summary": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer"
                },
                "activeCount": {
                    "type": "integer",
                    "description": "targets that have not been reached yet"
                },
                "totalTargetAmount": {
                    "type": "string"
                },
                "totalCurrentAmount": {
                    "type": "string"
                },
                "totalRemaining": {
                    "type": "string"
                },
                "overallProgress": {
                    "type": "string"
                },
                "monthlyTarget": {
                    "type": "string"
                },
                "monthlyActual": {
                    "type": "string"
                },
                "monthlyAchievement": {
                    "type": "string"
                },
                "healthyCount": {
                    "type": "integer"
                },
                "warningCount": {
                    "type": "integer"
                },
                "criticalCount": {
                    "type": "integer"
                },
                "averageEta": {
                    "type": "string",
                    "description": "mean of the finite ETAs"
                },
                "insight": {
                    "$ref": "#/definitions/savings.Copy"
                }
            }
        },
        "v1.AllocationShare": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "ID of the allocation",
                    "example": "a9e1b6d2-3c4f-4e5a-9b8c-7d6e5f4a3b2c"
                },
                "targetId": {
                    "type": "string",
                    "description": "ID of the savings target",
                    "example": "c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a"
                },
                "amount": {
                    "type": "string",
                    "description": "Allocated amount",
                    "example": "1250000"
                },
                "percentage": {
                    "type": "string",
                    "description": "Allocated share in percent",
                    "example": "25"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time of the allocation",
                    "example": "2026-03-25T09:00:00Z"
                }
            }
        },
        "v1.Category": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2026-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2026-04-17T20:14:01.048145Z"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the category, unique per type",
                    "example": "Makanan"
                },
                "type": {
                    "type": "string",
                    "description": "Type of the transactions in this category",
                    "example": "expense"
                },
                "color": {
                    "type": "string",
                    "description": "Display color",
                    "example": "#ef4444"
                },
                "icon": {
                    "type": "string",
                    "description": "Display icon",
                    "example": "🍔"
                },
                "links": {
                    "$ref": "#/definitions/v1.CategoryLinks"
                }
            }
        },
        "v1.CategoryCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryResponse"
                    },
                    "description": "List of the created Categories or their respective error"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CategoryEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the category, unique per type",
                    "example": "Makanan"
                },
                "type": {
                    "type": "string",
                    "description": "Type of the transactions in this category",
                    "example": "expense"
                },
                "color": {
                    "type": "string",
                    "description": "Display color",
                    "example": "#ef4444"
                },
                "icon": {
                    "type": "string",
                    "description": "Display icon",
                    "example": "🍔"
                }
            }
        },
        "v1.CategoryLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The category itself",
                    "example": "https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "transactions": {
                    "type": "string",
                    "description": "Transactions in this category",
                    "example": "https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91d71772f"
                }
            }
        },
        "v1.CategoryListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Category"
                    },
                    "description": "List of Categories"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CategoryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Category"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Dashboard": {
            "type": "object",
            "properties": {
                "totalIncome": {
                    "type": "string"
                },
                "totalExpense": {
                    "type": "string"
                },
                "balance": {
                    "type": "string"
                },
                "savingsRate": {
                    "type": "string",
                    "description": "Balance as a percentage of income",
                    "example": "32.5"
                },
                "healthText": {
                    "type": "string",
                    "description": "Assessment of the savings rate",
                    "example": "Kesehatan keuangan sangat baik"
                },
                "totalSavings": {
                    "type": "string",
                    "description": "Larger of the saved target amounts and the balance",
                    "example": "3000000"
                },
                "expenseByCategory": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dashboard.CategoryExpense"
                    },
                    "description": "Expenses per category, largest first"
                },
                "level": {
                    "$ref": "#/definitions/dashboard.Level"
                },
                "series": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dashboard.Day"
                    },
                    "description": "Savings per day for the last 30 days"
                },
                "last7DaysGrowth": {
                    "type": "string",
                    "description": "Savings in the last 7 days"
                },
                "last30DaysGrowth": {
                    "type": "string",
                    "description": "Savings in the last 30 days"
                },
                "momentumChange": {
                    "type": "string",
                    "description": "Change of the last week against the first week of the series, in percent",
                    "example": "25"
                },
                "momentum": {
                    "type": "string",
                    "description": "Direction of the trend",
                    "example": "accelerating"
                }
            }
        },
        "v1.DashboardResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Dashboard"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "month and year must be set together"
                }
            }
        },
        "v1.Links": {
            "type": "object",
            "properties": {
                "auth": {
                    "type": "string",
                    "description": "URL of the authentication endpoints",
                    "example": "https://example.com/api/v1/auth"
                },
                "profile": {
                    "type": "string",
                    "description": "URL of the profile of the logged in user",
                    "example": "https://example.com/api/v1/profile"
                },
                "categories": {
                    "type": "string",
                    "description": "URL of Category collection endpoint",
                    "example": "https://example.com/api/v1/categories"
                },
                "transactions": {
                    "type": "string",
                    "description": "URL of Transaction collection endpoint",
                    "example": "https://example.com/api/v1/transactions"
                },
                "targets": {
                    "type": "string",
                    "description": "URL of Savings Target collection endpoint",
                    "example": "https://example.com/api/v1/targets"
                },
                "dashboard": {
                    "type": "string",
                    "description": "URL of the dashboard endpoint",
                    "example": "https://example.com/api/v1/dashboard"
                },
                "export": {
                    "type": "string",
                    "description": "URL of the spreadsheet export",
                    "example": "https://example.com/api/v1/export"
                }
            }
        },
        "v1.LoginEditable": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "example": "budi@example.com"
                },
                "password": {
                    "type": "string",
                    "example": "rahasia-sekali"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "description": "The amount of records returned in this response",
                    "example": 25
                },
                "offset": {
                    "type": "integer",
                    "description": "The offset for the first record returned",
                    "example": 50
                },
                "limit": {
                    "type": "integer",
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25
                },
                "total": {
                    "type": "integer",
                    "description": "The total number of resources matching the query",
                    "example": 827
                }
            }
        },
        "v1.ProfileDelete": {
            "type": "object",
            "properties": {
                "password": {
                    "type": "string",
                    "description": "The password of the user",
                    "example": "rahasia-sekali"
                }
            }
        },
        "v1.ProfileEditable": {
            "type": "object",
            "properties": {
                "username": {
                    "type": "string",
                    "description": "Display name",
                    "example": "budi"
                },
                "image": {
                    "type": "string",
                    "description": "URL of the profile image. An empty string removes it",
                    "example": "https://example.com/avatars/budi.png"
                },
                "currentPassword": {
                    "type": "string",
                    "description": "The current password, required to set a new one",
                    "example": "rahasia-sekali"
                },
                "newPassword": {
                    "type": "string",
                    "description": "The new password",
                    "example": "lebih-rahasia"
                }
            }
        },
        "v1.RegisterEditable": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string",
                    "description": "Email address, used to log in",
                    "example": "budi@example.com"
                },
                "username": {
                    "type": "string",
                    "description": "Display name, must be unique",
                    "example": "budi"
                },
                "password": {
                    "type": "string",
                    "description": "Password, at least 8 characters",
                    "example": "rahasia-sekali"
                }
            }
        },
        "v1.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/v1.Links"
                }
            }
        },
        "v1.Target": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2026-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2026-04-17T20:14:01.048145Z"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the target",
                    "example": "Dana Darurat"
                },
                "targetAmount": {
                    "type": "string",
                    "description": "Amount to reach, must be positive",
                    "example": "12000000"
                },
                "targetDate": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Date the target should be reached at",
                    "example": "2027-01-01T00:00:00Z"
                },
                "initialInvestment": {
                    "type": "string",
                    "description": "Amount already saved when the target is created",
                    "example": "0"
                },
                "monthlyContribution": {
                    "type": "string",
                    "description": "Planned contribution per month, 0 for no plan",
                    "example": "1000000"
                },
                "allocationPercentage": {
                    "type": "string",
                    "description": "Suggested share of income in percent",
                    "example": "25"
                },
                "currentAmount": {
                    "type": "string",
                    "description": "Amount saved so far",
                    "example": "3000000"
                },
                "currentMonthAllocation": {
                    "type": "string",
                    "description": "Allocated in the current calendar month",
                    "example": "1000000"
                },
                "metrics": {
                    "$ref": "#/definitions/savings.Metrics"
                },
                "etaText": {
                    "type": "string",
                    "description": "The ETA for display",
                    "example": "9 bulan"
                },
                "insight": {
                    "type": "string",
                    "description": "What the numbers say about the target"
                },
                "speed": {
                    "$ref": "#/definitions/savings.Copy"
                },
                "status": {
                    "$ref": "#/definitions/savings.Copy"
                },
                "monthsSaved": {
                    "type": "integer",
                    "description": "Months ahead of the plan",
                    "example": 3
                },
                "challenge": {
                    "$ref": "#/definitions/savings.Challenge"
                },
                "links": {
                    "$ref": "#/definitions/v1.TargetLinks"
                }
            }
        },
        "v1.TargetAllocation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "ID of the allocation",
                    "example": "a9e1b6d2-3c4f-4e5a-9b8c-7d6e5f4a3b2c"
                },
                "targetId": {
                    "type": "string",
                    "description": "ID of the savings target",
                    "example": "c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a"
                },
                "amount": {
                    "type": "string",
                    "description": "Allocated amount",
                    "example": "1250000"
                },
                "percentage": {
                    "type": "string",
                    "description": "Allocated share in percent",
                    "example": "25"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time of the allocation",
                    "example": "2026-03-25T09:00:00Z"
                },
                "transaction": {
                    "$ref": "#/definitions/v1.Transaction"
                }
            }
        },
        "v1.TargetAllocationListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TargetAllocation"
                    },
                    "description": "Allocations, newest first"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TargetCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TargetResponse"
                    },
                    "description": "List of the created targets or their respective error"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TargetEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the target",
                    "example": "Dana Darurat"
                },
                "targetAmount": {
                    "type": "string",
                    "description": "Amount to reach, must be positive",
                    "example": "12000000"
                },
                "targetDate": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Date the target should be reached at",
                    "example": "2027-01-01T00:00:00Z"
                },
                "initialInvestment": {
                    "type": "string",
                    "description": "Amount already saved when the target is created",
                    "example": "0"
                },
                "monthlyContribution": {
                    "type": "string",
                    "description": "Planned contribution per month, 0 for no plan",
                    "example": "1000000"
                },
                "allocationPercentage": {
                    "type": "string",
                    "description": "Suggested share of income in percent",
                    "example": "25"
                }
            }
        },
        "v1.TargetLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The target itself",
                    "example": "https://example.com/api/v1/targets/c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a"
                },
                "allocations": {
                    "type": "string",
                    "description": "Allocations to the target",
                    "example": "https://example.com/api/v1/targets/c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a/allocations"
                }
            }
        },
        "v1.TargetListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Target"
                    },
                    "description": "List of savings targets"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TargetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Target"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TargetSummaryResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/savings.Summary"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Transaction": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2026-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2026-04-17T20:14:01.048145Z"
                },
                "categoryId": {
                    "type": "string",
                    "description": "ID of the category",
                    "example": "1b7e1a54-5b4f-4b3e-9f52-2a1a3c3e7b01"
                },
                "type": {
                    "type": "string",
                    "description": "Either income or expense",
                    "example": "income"
                },
                "amount": {
                    "type": "string",
                    "description": "Amount, must be positive",
                    "example": "5000000"
                },
                "description": {
                    "type": "string",
                    "description": "A short description",
                    "example": "Gaji bulan Maret"
                },
                "date": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Date of the transaction, defaults to now",
                    "example": "2026-03-25T09:00:00Z"
                },
                "category": {
                    "$ref": "#/definitions/v1.Category"
                },
                "allocation": {
                    "$ref": "#/definitions/v1.AllocationShare"
                },
                "links": {
                    "$ref": "#/definitions/v1.TransactionLinks"
                }
            }
        },
        "v1.TransactionCreate": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "description": "ID of the category",
                    "example": "1b7e1a54-5b4f-4b3e-9f52-2a1a3c3e7b01"
                },
                "type": {
                    "type": "string",
                    "description": "Either income or expense",
                    "example": "income"
                },
                "amount": {
                    "type": "string",
                    "description": "Amount, must be positive",
                    "example": "5000000"
                },
                "description": {
                    "type": "string",
                    "description": "A short description",
                    "example": "Gaji bulan Maret"
                },
                "date": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Date of the transaction, defaults to now",
                    "example": "2026-03-25T09:00:00Z"
                },
                "targetId": {
                    "type": "string",
                    "description": "Savings target that receives a share, income only. \"none\" or omitted for no target",
                    "example": "c3c2d1a0-7f6e-4d5c-8b9a-0f1e2d3c4b5a"
                },
                "allocationPercentage": {
                    "type": "string",
                    "description": "Share of the amount in percent, greater than 0 and at most 100",
                    "example": "25"
                }
            }
        },
        "v1.TransactionCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.TransactionResponse"
                    },
                    "description": "List of created Transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.TransactionEditable": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "description": "ID of the category",
                    "example": "1b7e1a54-5b4f-4b3e-9f52-2a1a3c3e7b01"
                },
                "type": {
                    "type": "string",
                    "description": "Either income or expense",
                    "example": "income"
                },
                "amount": {
                    "type": "string",
                    "description": "Amount, must be positive",
                    "example": "5000000"
                },
                "description": {
                    "type": "string",
                    "description": "A short description",
                    "example": "Gaji bulan Maret"
                },
                "date": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Date of the transaction, defaults to now",
                    "example": "2026-03-25T09:00:00Z"
                }
            }
        },
        "v1.TransactionLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The transaction itself",
                    "example": "https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"
                },
                "category": {
                    "type": "string",
                    "description": "The category of the transaction",
                    "example": "https://example.com/api/v1/categories/1b7e1a54-5b4f-4b3e-9f52-2a1a3c3e7b01"
                }
            }
        },
        "v1.TransactionListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Transaction"
                    },
                    "description": "List of transactions"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "$ref": "#/definitions/v1.Pagination"
                }
            }
        },
        "v1.TransactionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.Transaction"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Time the resource was created",
                    "example": "2026-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "format": "date-time",
                    "description": "Last time the resource was updated",
                    "example": "2026-04-17T20:14:01.048145Z"
                },
                "email": {
                    "type": "string",
                    "description": "Email address",
                    "example": "budi@example.com"
                },
                "username": {
                    "type": "string",
                    "description": "Display name",
                    "example": "budi"
                },
                "image": {
                    "type": "string",
                    "description": "URL of the profile image",
                    "example": "https://example.com/avatars/budi.png"
                },
                "links": {
                    "$ref": "#/definitions/v1.UserLinks"
                }
            }
        },
        "v1.UserLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The profile of the user",
                    "example": "https://example.com/api/v1/profile"
                }
            }
        },
        "v1.UserResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/v1.User"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the email or password is not correct"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        }
    },
    "tags": [
        {"name": "General"},
        {"name": "Auth"},
        {"name": "Profile"},
        {"name": "Categories"},
        {"name": "Transactions"},
        {"name": "Targets"},
        {"name": "Dashboard"},
        {"name": "Export"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
