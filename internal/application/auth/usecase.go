package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/L34N07/PATnav-sub000/internal/application/dto"
	"github.com/L34N07/PATnav-sub000/internal/application/ports"
	"github.com/L34N07/PATnav-sub000/internal/domain"
	"github.com/L34N07/PATnav-sub000/internal/domain/entity"
	"github.com/L34N07/PATnav-sub000/internal/domain/permisos"
	"github.com/L34N07/PATnav-sub000/internal/domain/registro"
	"github.com/L34N07/PATnav-sub000/pkg/jwt"
)

// Columnas candidatas del registro crudo de usuarios.
var (
	candUsuario = registro.Candidatos{"usuario", "user", "nombre_usuario"}
	candNombre  = registro.Candidatos{"nombre", "nombre_completo"}
	candClave   = registro.Candidatos{"clave", "password", "pass"}
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autentica usuarios de la aplicación contra el snapshot crudo de
// la tabla de usuarios y emite tokens que llevan la lista de capacidades
// permitidas, para que el middleware decida sin volver a consultar.
type AuthUseCase struct {
	src ports.RecordSource
	cfg JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(src ports.RecordSource, cfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{src: src, cfg: cfg}
}

// normalizarUsuario tipifica el registro crudo de un usuario con las mismas
// coerciones que el resto del sistema.
func normalizarUsuario(reg registro.Registro) entity.UsuarioApp {
	vUsuario, _ := registro.ResolverCampo(reg, candUsuario)
	vNombre, _ := registro.ResolverCampo(reg, candNombre)
	vClave, _ := registro.ResolverCampo(reg, candClave)
	return entity.UsuarioApp{
		Usuario: registro.ComoCadena(vUsuario),
		Nombre:  registro.ComoCadena(vNombre),
		Clave:   registro.ComoCadena(vClave),
	}
}

// buscarUsuario localiza el registro crudo cuyo campo usuario coincide sin
// casing. Devuelve ErrUsuarioNoExiste si ninguna fila matchea.
func (uc *AuthUseCase) buscarUsuario(ctx context.Context, usuario string) (registro.Registro, entity.UsuarioApp, error) {
	regs, err := uc.src.UsuariosApp(ctx)
	if err != nil {
		return nil, entity.UsuarioApp{}, fmt.Errorf("auth: usuarios: %w", err)
	}
	buscado := strings.ToLower(strings.TrimSpace(usuario))
	for _, reg := range regs {
		u := normalizarUsuario(reg)
		if strings.ToLower(u.Usuario) == buscado {
			return reg, u, nil
		}
	}
	return nil, entity.UsuarioApp{}, domain.ErrUsuarioNoExiste
}

// Login verifica las credenciales y devuelve token + matriz de permisos.
// La clave almacenada puede ser un hash bcrypt o, en filas legadas, texto
// plano; se prueba bcrypt primero.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Usuario) == "" || in.Clave == "" {
		return nil, domain.ErrInvalidInput
	}
	reg, u, err := uc.buscarUsuario(ctx, in.Usuario)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Clave), []byte(in.Clave)) != nil {
		if u.Clave == "" || u.Clave != in.Clave {
			return nil, domain.ErrCredenciales
		}
	}

	claves := permisos.ClavesPermitidas(reg, permisos.Capacidades)
	token, err := jwt.Generate(uc.cfg.Secret, u.Usuario, claves, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: emitir token: %w", err)
	}

	return &dto.LoginResponse{
		Token:    token,
		Usuario:  u.Usuario,
		Nombre:   u.Nombre,
		Permisos: permisos.Derivar(reg, permisos.Capacidades),
	}, nil
}

// Permisos devuelve la matriz completa del usuario pedido.
func (uc *AuthUseCase) Permisos(ctx context.Context, usuario string) (*dto.PermisosResponse, error) {
	reg, _, err := uc.buscarUsuario(ctx, usuario)
	if err != nil {
		return nil, err
	}
	return &dto.PermisosResponse{
		Usuario:  usuario,
		Permisos: permisos.Derivar(reg, permisos.Capacidades),
	}, nil
}
