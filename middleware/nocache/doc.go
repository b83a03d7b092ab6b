// Package nocache fornece um middleware net/http que desabilita cache em
// clientes e intermediários.
//
// Os cabeçalhos são aplicados no momento em que o status é escrito, e não na
// entrada do handler: http.FileServer remove Cache-Control ao responder erros
// (404, 403...), e a resposta de erro também precisa sair sem cache.
package nocache
