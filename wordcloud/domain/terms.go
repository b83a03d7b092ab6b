package domain

// DefaultTerms é a lista fixa de buscas usada quando nenhuma fonte externa é
// configurada (TERMS_FILE).
var DefaultTerms = []string{
	"AI advancements 2025", "sustainable technology", "quantum computing",
	"metaverse development", "renewable energy", "space exploration",
	"AI ethics", "climate change solutions", "5G technology", "smart cities",
	"artificial intelligence", "machine learning", "virtual reality",
	"augmented reality", "blockchain technology", "cybersecurity trends",
	"electric vehicles", "autonomous driving", "robotics", "quantum supremacy",
	"AI healthcare", "remote work tools", "web3 development", "NFTs",
	"cryptocurrency trends", "sustainable fashion", "clean energy",
	"space tourism", "brain-computer interfaces", "biotechnology",
	"AI in education", "quantum internet", "6G technology", "smart homes",
	"AI art generation", "sustainable agriculture", "ocean cleanup",
	"fusion energy", "AI ethics guidelines", "quantum cryptography",
}
