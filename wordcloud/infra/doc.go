// Package infra contém as implementações concretas dos contratos do pacote
// domain.
//
// Exemplos:
//   - Engine: motor de layout baseado em github.com/psykhi/wordclouds
//   - Composer: título, contorno e escala final com github.com/fogleman/gg
//   - PNGWriter: persistência da imagem
//   - RedisPublisher: publica o mapa de frequências em um hash do Redis
package infra
