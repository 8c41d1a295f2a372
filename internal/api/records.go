package api

// Wire records exchanged with the ProSync backend. Field names follow the
// backend's JSON (a mix of English and Spanish); optional fields are pointers
// so an omitted field stays distinguishable from a zero value.

type AuthResponse struct {
	Token string `json:"token"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type GoogleLoginRequest struct {
	Token    string  `json:"token"`
	Username *string `json:"username,omitempty"`
}

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Project struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`

	// Members and Tasks are not authoritative on the listing endpoint;
	// repo.Project.ListWithStats fills them in client-side.
	Members int `json:"miembros"`
	Tasks   int `json:"tareas"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type Member struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
}

type ProjectDetail struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	Miembros    []Member `json:"miembros"`
}

type Board struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CreateBoardRequest struct {
	Name string `json:"name"`
}

// Estado is the status id+label pair as the backend sends it.
type Estado struct {
	ID     int    `json:"id"`
	Estado string `json:"estado"`
}

type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Estado      *Estado `json:"estado,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	CreatedAt   *string `json:"createdAt,omitempty"`

	// Flattened variants some endpoints use instead of the nested Estado.
	BoardID             *int    `json:"boardId,omitempty"`
	BoardName           *string `json:"boardName,omitempty"`
	EstadoID            *int    `json:"estadoId,omitempty"`
	EstadoNombre        *string `json:"estadoNombre,omitempty"`
	ResponsableID       *int    `json:"responsableId,omitempty"`
	ResponsableUsername *string `json:"responsableUsername,omitempty"`
	ProjectID           *int    `json:"projectId,omitempty"`
	ProjectName         *string `json:"projectName,omitempty"`
}

type CreateTaskRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	DueDate       *string `json:"dueDate,omitempty"`
	BoardID       int     `json:"boardId"`
	EstadoID      int     `json:"estadoId"`
	ResponsableID *int    `json:"responsableId,omitempty"`
}

type UpdateTaskRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	Estado        Estado  `json:"estado"`
	DueDate       *string `json:"dueDate"`
	ResponsableID *int    `json:"responsableId,omitempty"`
}

type Comment struct {
	ID        int     `json:"id"`
	Contenido string  `json:"contenido"`
	CreatedAt *string `json:"createdAt,omitempty"`
	User      *User   `json:"user,omitempty"`
}

type CreateCommentRequest struct {
	TaskID    int    `json:"taskId"`
	UserID    int    `json:"userId"`
	Contenido string `json:"contenido"`
}

type TaskFile struct {
	ID         int     `json:"id"`
	ArchivoURL string  `json:"archivoUrl"`
	CreatedAt  *string `json:"createdAt,omitempty"`
}

type Role struct {
	ID  int    `json:"id"`
	Rol string `json:"rol"`
}

type UserProject struct {
	Usuario User `json:"usuario"`
	Rol     Role `json:"rol"`
}

type CreateUserProjectRequest struct {
	UserID    int `json:"userId"`
	ProjectID int `json:"projectId"`
	RolID     int `json:"rolId"`
}

type UpdateRoleRequest struct {
	RolID int `json:"rolId"`
}

type Notification struct {
	ID        int     `json:"id"`
	Mensaje   string  `json:"mensaje"`
	Tipo      *string `json:"tipo,omitempty"`
	Leida     bool    `json:"leida"`
	CreatedAt *string `json:"createdAt,omitempty"`
}

type DashboardStats struct {
	ProyectosActivos  int     `json:"proyectosActivos"`
	CambioProyectos   int     `json:"cambioProyectos"`
	TareasCompletadas int     `json:"tareasCompletadas"`
	CambioTareas      int     `json:"cambioTareas"`
	MiembrosEquipo    int     `json:"miembrosEquipo"`
	CambioMiembros    int     `json:"cambioMiembros"`
	TiempoPromedio    float64 `json:"tiempoPromedio"`
	CambioTiempo      float64 `json:"cambioTiempo"`
}

// Page is the backend's paginated envelope. Repositories unwrap Content
// before anything reaches a screen; callers never see pagination metadata.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
	Last          bool  `json:"last"`
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	Empty         bool  `json:"empty"`
}
