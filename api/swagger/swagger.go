package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "ContentPilot Console API",
        "description": "Admin console backend for the ContentPilot platform",
        "version": "0.1.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Auth", "description": "Login, logout and identity"},
        {"name": "Session", "description": "Session bootstrap with capabilities and menu"},
        {"name": "Sites", "description": "WordPress site management"},
        {"name": "Keywords", "description": "Keyword pipeline management"},
        {"name": "Content", "description": "Content review queue"},
        {"name": "AuditLogs", "description": "Audit trail and exports"},
        {"name": "Users", "description": "Account and role administration"},
        {"name": "Admins", "description": "Administrator roster"},
        {"name": "RoleApplications", "description": "Role upgrade requests"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log in",
                "responses": {
                    "200": {"description": "Identity with session cookie set"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["Auth"],
                "summary": "Log out",
                "responses": {
                    "204": {"description": "Session cleared"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Auth"],
                "summary": "Current identity",
                "responses": {
                    "200": {"description": "Identity"},
                    "401": {"description": "Not signed in"}
                }
            }
        },
        "/session": {
            "get": {
                "tags": ["Session"],
                "summary": "Session bootstrap",
                "responses": {
                    "200": {"description": "User, capabilities and menu"}
                }
            }
        },
        "/nav": {
            "get": {
                "tags": ["Session"],
                "summary": "Navigation menu",
                "responses": {
                    "200": {"description": "Visible menu entries"}
                }
            }
        },
        "/sites": {
            "get": {
                "tags": ["Sites"],
                "summary": "List sites",
                "responses": {"200": {"description": "Site page"}}
            },
            "post": {
                "tags": ["Sites"],
                "summary": "Create a site",
                "responses": {"201": {"description": "Created site"}}
            }
        },
        "/sites/{id}": {
            "patch": {
                "tags": ["Sites"],
                "summary": "Update a site",
                "responses": {"200": {"description": "Updated site"}}
            }
        },
        "/keywords": {
            "get": {
                "tags": ["Keywords"],
                "summary": "List keywords",
                "responses": {"200": {"description": "Keyword page"}}
            },
            "post": {
                "tags": ["Keywords"],
                "summary": "Create a keyword",
                "responses": {"201": {"description": "Created keyword"}}
            }
        },
        "/keywords/{id}": {
            "patch": {
                "tags": ["Keywords"],
                "summary": "Update a keyword",
                "responses": {"200": {"description": "Updated keyword"}}
            },
            "delete": {
                "tags": ["Keywords"],
                "summary": "Delete a keyword",
                "responses": {"204": {"description": "Deleted"}}
            }
        },
        "/content-queue": {
            "get": {
                "tags": ["Content"],
                "summary": "List content queue",
                "responses": {"200": {"description": "Content page with allowed actions"}}
            }
        },
        "/content-queue/{id}/status": {
            "patch": {
                "tags": ["Content"],
                "summary": "Change content status",
                "responses": {
                    "200": {"description": "Updated item"},
                    "409": {"description": "Transition not allowed"}
                }
            }
        },
        "/audit-logs": {
            "get": {
                "tags": ["AuditLogs"],
                "summary": "List audit logs",
                "responses": {
                    "200": {"description": "Audit entries"},
                    "422": {"description": "Invalid datetime filter"}
                }
            }
        },
        "/audit-logs/export": {
            "get": {
                "tags": ["AuditLogs"],
                "summary": "Export audit logs",
                "responses": {"200": {"description": "CSV or PDF download"}}
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "responses": {"200": {"description": "User page"}}
            }
        },
        "/users/roles": {
            "get": {
                "tags": ["Users"],
                "summary": "List assignable roles",
                "responses": {"200": {"description": "Role records"}}
            }
        },
        "/users/assign-role": {
            "post": {
                "tags": ["Users"],
                "summary": "Assign a role",
                "responses": {"204": {"description": "Assigned"}}
            }
        },
        "/users/{id}/toggle-active": {
            "patch": {
                "tags": ["Users"],
                "summary": "Toggle account status",
                "responses": {"204": {"description": "Toggled"}}
            }
        },
        "/admins": {
            "get": {
                "tags": ["Admins"],
                "summary": "List administrators",
                "responses": {"200": {"description": "Administrator roster"}}
            },
            "post": {
                "tags": ["Admins"],
                "summary": "Grant administrator access",
                "responses": {"201": {"description": "Granted"}}
            }
        },
        "/admins/{id}": {
            "delete": {
                "tags": ["Admins"],
                "summary": "Revoke administrator access",
                "responses": {"204": {"description": "Revoked"}}
            }
        },
        "/role-applications": {
            "get": {
                "tags": ["RoleApplications"],
                "summary": "List role applications",
                "responses": {"200": {"description": "Applications"}}
            },
            "post": {
                "tags": ["RoleApplications"],
                "summary": "Apply for a role",
                "responses": {"201": {"description": "Submitted"}}
            }
        },
        "/role-applications/mine": {
            "get": {
                "tags": ["RoleApplications"],
                "summary": "List own role applications",
                "responses": {"200": {"description": "Applications"}}
            }
        },
        "/role-applications/{id}/review": {
            "patch": {
                "tags": ["RoleApplications"],
                "summary": "Review a role application",
                "responses": {"200": {"description": "Reviewed"}}
            }
        },
        "/role-applications/{id}": {
            "delete": {
                "tags": ["RoleApplications"],
                "summary": "Withdraw a role application",
                "responses": {"204": {"description": "Withdrawn"}}
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "limit": {"type": "integer"},
                "has_next": {"type": "boolean"},
                "has_prev": {"type": "boolean"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
