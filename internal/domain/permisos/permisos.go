// Package permisos deriva la matriz de permisos de un usuario a partir de su
// registro crudo. El conjunto de capacidades es cerrado y declarado acá; la
// matriz resultante siempre trae todas las claves, nunca queda parcial.
package permisos

import "github.com/L34N07/PATnav-sub000/internal/domain/registro"

// Capacidad describe un permiso: la clave canónica de columna y un alias
// opcional que algunos orígenes usan en su lugar.
type Capacidad struct {
	Clave string
	Alias string
}

// Capacidades es la lista ordenada y cerrada de permisos de la aplicación.
// El orden declara el orden de presentación.
var Capacidades = []Capacidad{
	{Clave: "verCobranzas", Alias: "ver_cobranzas"},
	{Clave: "verIgnorados", Alias: "ver_ignorados"},
	{Clave: "editarComprobantes", Alias: "editar_comprobantes"},
	{Clave: "verPrestamos", Alias: "ver_prestamos"},
	{Clave: "imprimir"},
	{Clave: "verUsuarios", Alias: "ver_usuarios"},
}

// Claves de capacidad usadas por las rutas protegidas.
const (
	CapVerCobranzas = "verCobranzas"
	CapVerIgnorados = "verIgnorados"
	CapVerPrestamos = "verPrestamos"
	CapVerUsuarios  = "verUsuarios"
)

// Matriz mapea cada clave de capacidad declarada a permitido/denegado.
type Matriz map[string]bool

// Derivar arma la matriz completa para un registro de usuario: cada
// descriptor se resuelve con tolerancia de casing (clave y alias) y se
// coerciona a booleano; lo ausente o irresoluble queda en false. La salida
// cubre siempre todos los descriptores.
func Derivar(reg registro.Registro, capacidades []Capacidad) Matriz {
	m := make(Matriz, len(capacidades))
	for _, c := range capacidades {
		cand := registro.Candidatos{c.Clave}
		if c.Alias != "" {
			cand = append(cand, c.Alias)
		}
		v, ok := registro.ResolverCampo(reg, cand)
		m[c.Clave] = ok && registro.ComoBool(v)
	}
	return m
}

// ClavesPermitidas extrae las claves en true preservando el orden de
// declaración de los descriptores, sin repetidos.
func ClavesPermitidas(reg registro.Registro, capacidades []Capacidad) []string {
	m := Derivar(reg, capacidades)
	vistas := make(map[string]struct{}, len(capacidades))
	claves := make([]string, 0, len(capacidades))
	for _, c := range capacidades {
		if _, ya := vistas[c.Clave]; ya {
			continue
		}
		vistas[c.Clave] = struct{}{}
		if m[c.Clave] {
			claves = append(claves, c.Clave)
		}
	}
	return claves
}
