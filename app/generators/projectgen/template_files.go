package projectgen

const dockerfileTemplate = `FROM golang:{{.GoVersion}} AS build
WORKDIR /src
COPY go.mod go.sum* ./
RUN go mod download
COPY . .
RUN CGO_ENABLED=0 go build -o /out/server .

FROM gcr.io/distroless/static-debian12
WORKDIR /app
COPY --from=build /out/server /app/server
ENV ADDR=:8000
EXPOSE 8000
ENTRYPOINT ["/app/server"]
`

const envExampleTemplate = `# Application
APP_NAME={{.Name}}
DEBUG=false
VERSION=1.0.0
ADDR=:8000

# Database
DATABASE_URL=app.db

# Security
SECRET_KEY=your-secret-key-change-in-production
ACCESS_TOKEN_EXPIRE_MINUTES=30
ALGORITHM=HS256

# CORS
CORS_ORIGINS=http://localhost:3000
`

const readmeTemplate = `# {{.Name}}

Go HTTP service generated by scaffold create-project.

## Setup

1. Fetch dependencies:
~~~bash
go mod tidy
~~~

2. Create a .env file:
~~~bash
cp .env.example .env
~~~

3. Run the service:
~~~bash
go run .
~~~

4. Run the tests:
~~~bash
go test ./...
~~~

## Endpoints

- GET / welcome message
- GET /health health check
- POST /auth/register, POST /auth/login authentication stubs
- GET /tasks, POST /tasks starter task routes

Add a resource with full CRUD:
~~~bash
scaffold generate-crud product --fields name:str price:float stock:int
~~~

## Docker

~~~bash
docker compose up --build
~~~

## Project Structure

~~~
main.go              # server startup and shutdown
app/
├── app.go           # routes, CORS, schema list
├── config/          # settings from the environment
├── database/        # SQLite session and migrations
├── models/          # table rows and CREATE TABLE statements
├── schemas/         # request and response payloads
└── routers/         # HTTP handlers
~~~
`

const gitignoreTemplate = `# Binaries
/server
*.exe
*.test
*.out
bin/

# SQLite
*.db
*.db-journal
*.db-wal
*.db-shm
data/

# Environment
.env
.env.local

# IDE
.vscode/
.idea/
*.swp
*.swo

# OS
.DS_Store
Thumbs.db

# Logs
*.log
logs/
`
