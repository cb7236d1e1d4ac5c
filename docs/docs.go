// Package docs holds the OpenAPI document served at /swagger/.
// Regenerate with: swag init -g cmd/storefront-api/main.go
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
        "/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List active products",
                "parameters": [
                    {"type": "integer", "description": "Page number (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Items per page (default: 12, max: 100)", "name": "limit", "in": "query"},
                    {"type": "string", "description": "Category slug", "name": "category", "in": "query"},
                    {"type": "string", "description": "Brand slug", "name": "brand", "in": "query"},
                    {"type": "number", "description": "Lower price bound", "name": "minPrice", "in": "query"},
                    {"type": "number", "description": "Upper price bound", "name": "maxPrice", "in": "query"},
                    {"type": "string", "description": "Case-insensitive text in name or description", "name": "search", "in": "query"},
                    {"enum": ["price-low", "price-high", "rating", "newest"], "type": "string", "description": "Sort order", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProductListResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Create a product (Admin)",
                "parameters": [
                    {"description": "Product details", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateProductRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Validation error, unknown category or brand, or duplicate name", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "401": {"description": "Authentication required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "403": {"description": "Admin role required", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/products/featured": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List featured products",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}}}
                }
            }
        },
        "/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get a product by ID",
                "parameters": [{"type": "string", "format": "uuid", "description": "Product ID (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "400": {"description": "Invalid product ID format", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Update a product (Admin)",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Product ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "product", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateProductRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Product"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Deactivate a product (Admin)",
                "parameters": [{"type": "string", "format": "uuid", "description": "Product ID (UUID)", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "List active categories",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Category"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Create a category (Admin)",
                "parameters": [{"description": "Category details", "name": "category", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateCategoryRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Category"}}}
            }
        },
        "/categories/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Categories"],
                "summary": "Get an active category by slug",
                "parameters": [{"type": "string", "description": "Category slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Category"}},
                    "404": {"description": "Category not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/brands": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Brands"],
                "summary": "List active brands",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Brand"}}}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Brands"],
                "summary": "Create a brand (Admin)",
                "parameters": [{"description": "Brand details", "name": "brand", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateBrandRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Brand"}}}
            }
        },
        "/brands/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Brands"],
                "summary": "Get an active brand by slug",
                "parameters": [{"type": "string", "description": "Brand slug", "name": "slug", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Brand"}},
                    "404": {"description": "Brand not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register a new account",
                "parameters": [{"description": "Registration details", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.AuthResponse"}},
                    "400": {"description": "Validation error or user already exists", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log in",
                "parameters": [{"description": "Email and password", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AuthResponse"}},
                    "401": {"description": "Invalid email or password", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "429": {"description": "Too many attempts, see retryAfter", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/auth/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Get the current user",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProfileResponse"}}}
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageResponse"}}}
            }
        },
        "/cart/quote": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Cart"],
                "summary": "Price a cart",
                "parameters": [{"description": "Cart lines", "name": "cart", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CartQuoteRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.CartQuote"}},
                    "400": {"description": "Validation error or insufficient stock", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "Product not found or inactive", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/admin/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Dashboard statistics (Admin)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.DashboardStats"}}}
            }
        },
        "/admin/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List all orders (Admin)",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Order"}}}}
            }
        },
        "/admin/orders/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "Update order status (Admin)",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Order ID (UUID)", "name": "id", "in": "path", "required": true},
                    {"description": "New Order Status", "name": "status", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateOrderStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Order"}},
                    "404": {"description": "Order not found", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/admin/products": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin"],
                "summary": "List all products (Admin)",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ProductListResponse"}}}
            }
        }
    },
    "definitions": {
        "models.CatalogRef": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "slug": {"type": "string"}}
        },
        "models.Color": {
            "type": "object",
            "required": ["colorValue", "name"],
            "properties": {"colorValue": {"type": "string"}, "name": {"type": "string"}}
        },
        "models.Product": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "originalPrice": {"type": "number"},
                "category": {"$ref": "#/definitions/models.CatalogRef"},
                "brand": {"$ref": "#/definitions/models.CatalogRef"},
                "images": {"type": "array", "items": {"type": "string"}},
                "sizes": {"type": "array", "items": {"type": "string"}},
                "colors": {"type": "array", "items": {"$ref": "#/definitions/models.Color"}},
                "features": {"type": "array", "items": {"type": "string"}},
                "stock": {"type": "integer"},
                "rating": {"type": "number"},
                "numReviews": {"type": "integer"},
                "badge": {"type": "string"},
                "isFeatured": {"type": "boolean"},
                "isActive": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.CreateProductRequest": {
            "type": "object",
            "required": ["brand", "category", "description", "name"],
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 200},
                "description": {"type": "string", "maxLength": 5000},
                "price": {"type": "number", "minimum": 0},
                "originalPrice": {"type": "number", "minimum": 0},
                "category": {"type": "string"},
                "brand": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "sizes": {"type": "array", "items": {"type": "string"}},
                "colors": {"type": "array", "items": {"$ref": "#/definitions/models.Color"}},
                "features": {"type": "array", "items": {"type": "string"}},
                "stock": {"type": "integer", "minimum": 0},
                "rating": {"type": "number", "maximum": 5, "minimum": 0},
                "numReviews": {"type": "integer", "minimum": 0},
                "badge": {"type": "string", "maxLength": 50},
                "isFeatured": {"type": "boolean"},
                "isActive": {"type": "boolean"}
            }
        },
        "models.UpdateProductRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "minLength": 2, "maxLength": 200},
                "description": {"type": "string", "maxLength": 5000},
                "price": {"type": "number", "minimum": 0},
                "originalPrice": {"type": "number", "minimum": 0},
                "category": {"type": "string"},
                "brand": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "sizes": {"type": "array", "items": {"type": "string"}},
                "colors": {"type": "array", "items": {"$ref": "#/definitions/models.Color"}},
                "features": {"type": "array", "items": {"type": "string"}},
                "stock": {"type": "integer", "minimum": 0},
                "rating": {"type": "number", "maximum": 5, "minimum": 0},
                "numReviews": {"type": "integer", "minimum": 0},
                "badge": {"type": "string", "maxLength": 50},
                "isFeatured": {"type": "boolean"},
                "isActive": {"type": "boolean"}
            }
        },
        "models.ProductListResponse": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/models.Product"}},
                "currentPage": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "totalProducts": {"type": "integer"}
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "slug": {"type": "string"},
                "description": {"type": "string"}, "image": {"type": "string"}, "isActive": {"type": "boolean"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.CreateCategoryRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "minLength": 2, "maxLength": 100}, "description": {"type": "string", "maxLength": 1000}, "image": {"type": "string"}}
        },
        "models.Brand": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "name": {"type": "string"}, "slug": {"type": "string"},
                "description": {"type": "string"}, "logo": {"type": "string"}, "website": {"type": "string"},
                "isActive": {"type": "boolean"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.CreateBrandRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string", "minLength": 2, "maxLength": 100}, "description": {"type": "string", "maxLength": 1000}, "logo": {"type": "string"}, "website": {"type": "string"}}
        },
        "models.User": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}
        },
        "models.RegisterRequest": {
            "type": "object",
            "required": ["email", "name", "password"],
            "properties": {"email": {"type": "string"}, "name": {"type": "string", "maxLength": 100}, "password": {"type": "string", "minLength": 6}}
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "models.AuthResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/models.User"}, "token": {"type": "string"}, "expiresIn": {"type": "integer"}}
        },
        "models.ProfileResponse": {
            "type": "object",
            "properties": {"user": {"$ref": "#/definitions/models.User"}}
        },
        "models.QuoteItemRequest": {
            "type": "object",
            "required": ["productId", "quantity"],
            "properties": {"productId": {"type": "string"}, "quantity": {"type": "integer", "minimum": 1}, "size": {"type": "string"}, "color": {"type": "string"}}
        },
        "models.CartQuoteRequest": {
            "type": "object",
            "required": ["items"],
            "properties": {"items": {"type": "array", "maxItems": 100, "minItems": 1, "items": {"$ref": "#/definitions/models.QuoteItemRequest"}}}
        },
        "models.CartLine": {
            "type": "object",
            "properties": {
                "productId": {"type": "string"}, "size": {"type": "string"}, "color": {"type": "string"}, "name": {"type": "string"},
                "image": {"type": "string"}, "price": {"type": "number"}, "quantity": {"type": "integer"}, "subtotal": {"type": "number"}
            }
        },
        "models.CartQuote": {
            "type": "object",
            "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/models.CartLine"}}, "total": {"type": "number"}, "itemCount": {"type": "integer"}}
        },
        "models.MonthlyRevenue": {
            "type": "object",
            "properties": {"_id": {"type": "string"}, "revenue": {"type": "number"}, "orders": {"type": "integer"}}
        },
        "models.DashboardStats": {
            "type": "object",
            "properties": {
                "totalProducts": {"type": "integer"}, "totalOrders": {"type": "integer"}, "totalUsers": {"type": "integer"},
                "totalRevenue": {"type": "number"}, "monthlyRevenue": {"type": "array", "items": {"$ref": "#/definitions/models.MonthlyRevenue"}}
            }
        },
        "models.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "user": {"type": "object"}, "orderItems": {"type": "array", "items": {"type": "object"}},
                "totalPrice": {"type": "number"}, "status": {"type": "string"}, "isDelivered": {"type": "boolean"},
                "deliveredAt": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "models.UpdateOrderStatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string", "enum": ["Pending", "Processing", "Shipped", "Delivered", "Cancelled"]}}
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "details": {"type": "array", "items": {"type": "string"}}, "retryAfter": {"type": "integer"}}
        },
        "response.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Storefront API",
	Description:      "Catalog, authentication, cart pricing and admin endpoints for the online store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
