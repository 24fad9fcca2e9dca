package rest

// Route trees are per HTTP method in gin, so GET /users/:name and
// PUT /users/:id coexist without conflict.
const (
	// users
	RouteUsers       = "/users"
	RouteLogin       = RouteUsers + "/login"
	RouteMe          = RouteUsers + "/me"
	RouteUsersByName = RouteUsers + "/:name"
	RouteUser        = RouteUsers + "/:id"
	RouteUserActive  = RouteUser + "/toggle-active"
	RouteUserDeleted = RouteUser + "/toggle-deleted"

	// user types
	RouteUserTypes       = "/user-types"
	RouteUserTypesByName = RouteUserTypes + "/:name"
	RouteUserType        = RouteUserTypes + "/:id"
	RouteUserTypeActive  = RouteUserType + "/toggle-active"
	RouteUserTypeDeleted = RouteUserType + "/toggle-deleted"

	// tasks
	RouteTasks       = "/tasks"
	RouteTask        = RouteTasks + "/:id"
	RouteTaskActive  = RouteTask + "/toggle-active"
	RouteTaskDeleted = RouteTask + "/toggle-deleted"

	// task types
	RouteTaskTypes       = "/task-types"
	RouteTaskTypesByName = RouteTaskTypes + "/:name"
	RouteTaskType        = RouteTaskTypes + "/:id"
	RouteTaskTypeActive  = RouteTaskType + "/toggle-active"
	RouteTaskTypeDeleted = RouteTaskType + "/toggle-deleted"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
