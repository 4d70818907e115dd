package fdl

import (
	"fmt"

	"github.com/richard-senior/footballlab/pkg/util"
)

// NamePool is a set of first and last names shared by related nationalities
type NamePool struct {
	Name       string   `yaml:"name"`
	FirstNames []string `yaml:"first_names"`
	LastNames  []string `yaml:"last_names"`
}

type PersonName struct {
	First string
	Last  string
}

func (n PersonName) Full() string {
	return n.First + " " + n.Last
}

// namer draws nationalities and matching names
type namer struct {
	nationalities []Nationality
	pools         map[string]*NamePool
}

func newNamer(cfg *Config) *namer {
	n := &namer{nationalities: cfg.Nationalities, pools: map[string]*NamePool{}}
	for i := range cfg.NamePools {
		n.pools[cfg.NamePools[i].Name] = &cfg.NamePools[i]
	}
	return n
}

// Nationality picks a nationality by weight
func (n *namer) Nationality(s *util.Sampler) (Nationality, error) {
	nat, err := util.WeightedChoice(s, n.nationalities, func(x Nationality) float64 { return x.Weight })
	if err != nil {
		return Nationality{}, fmt.Errorf("failed to choose nationality: %w", err)
	}
	return nat, nil
}

// Name returns a name drawn from the pool of nat
func (n *namer) Name(s *util.Sampler, nat Nationality) (PersonName, error) {
	pool, ok := n.pools[nat.Pool]
	if !ok {
		return PersonName{}, fmt.Errorf("no name pool %s for %s", nat.Pool, nat.Name)
	}
	return PersonName{
		First: util.Pick(s, pool.FirstNames),
		Last:  util.Pick(s, pool.LastNames),
	}, nil
}

// Person draws a nationality and a matching name in one go
func (n *namer) Person(s *util.Sampler) (Nationality, PersonName, error) {
	nat, err := n.Nationality(s)
	if err != nil {
		return nat, PersonName{}, err
	}
	name, err := n.Name(s, nat)
	return nat, name, err
}

func defaultNationalities() []Nationality {
	return []Nationality{
		{"English", 0.185, "english"},
		{"Spanish", 0.12, "spanish"},
		{"French", 0.11, "french"},
		{"German", 0.10, "german"},
		{"Italian", 0.08, "italian"},
		{"Portuguese", 0.05, "portuguese"},
		{"Dutch", 0.05, "dutch"},
		{"Belgian", 0.04, "dutch"},
		{"Brazilian", 0.09, "portuguese"},
		{"Argentine", 0.07, "spanish"},
		{"Colombian", 0.03, "spanish"},
		{"Uruguayan", 0.02, "spanish"},
		{"Chilean", 0.015, "spanish"},
		{"Croatian", 0.025, "slavic"},
		{"Serbian", 0.020, "slavic"},
		{"Polish", 0.020, "slavic"},
		{"Czech", 0.015, "slavic"},
		{"Ukrainian", 0.015, "slavic"},
		{"Russian", 0.015, "slavic"},
		{"Romanian", 0.010, "slavic"},
		{"Swedish", 0.015, "nordic"},
		{"Danish", 0.012, "nordic"},
		{"Norwegian", 0.010, "nordic"},
		{"Turkish", 0.020, "turkish"},
		{"Austrian", 0.010, "german"},
		{"Swiss", 0.010, "german"},
		{"Greek", 0.008, "greek"},
		{"Irish", 0.008, "english"},
		{"Scottish", 0.008, "english"},
		{"Welsh", 0.005, "english"},
		{"Nigerian", 0.025, "west_african"},
		{"Senegalese", 0.020, "francophone_african"},
		{"Ivorian", 0.018, "francophone_african"},
		{"Ghanaian", 0.015, "west_african"},
		{"Cameroonian", 0.015, "francophone_african"},
		{"Egyptian", 0.015, "arabic"},
		{"Moroccan", 0.012, "arabic"},
		{"Algerian", 0.010, "arabic"},
		{"South African", 0.008, "english"},
		{"Malian", 0.008, "francophone_african"},
		{"Japanese", 0.026, "japanese"},
		{"Korean", 0.021, "korean"},
		{"Indonesian", 0.018, "indonesian"},
		{"Australian", 0.012, "english"},
		{"Iranian", 0.010, "persian"},
		{"Saudi Arabian", 0.015, "arabic"},
		{"Chinese", 0.007, "chinese"},
		{"Mexican", 0.015, "spanish"},
		{"American", 0.012, "english"},
		{"Canadian", 0.008, "english"},
		{"Ecuadorian", 0.008, "spanish"},
		{"Peruvian", 0.006, "spanish"},
		{"Paraguayan", 0.005, "spanish"},
		{"Venezuelan", 0.005, "spanish"},
	}
}

func defaultNamePools() []NamePool {
	return []NamePool{
		{
			Name:       "english",
			FirstNames: []string{"Harry", "Jack", "Oliver", "George", "Charlie", "James", "Thomas", "William", "Daniel", "Callum", "Mason", "Lewis", "Ryan", "Jordan", "Kieran", "Declan"},
			LastNames:  []string{"Smith", "Jones", "Taylor", "Brown", "Walker", "Wright", "Robinson", "Thompson", "Hughes", "Edwards", "Clarke", "Bennett", "Marshall", "Fletcher", "Barnes", "Holloway"},
		},
		{
			Name:       "spanish",
			FirstNames: []string{"Alejandro", "Pablo", "Sergio", "Javier", "Diego", "Álvaro", "Carlos", "Mateo", "Iker", "Andrés", "Luis", "Martín", "Nicolás", "Santiago"},
			LastNames:  []string{"García", "Fernández", "López", "Martínez", "Sánchez", "Pérez", "Gómez", "Ruiz", "Navarro", "Torres", "Ramírez", "Castillo", "Ortega", "Morales"},
		},
		{
			Name:       "portuguese",
			FirstNames: []string{"João", "Tiago", "Rafael", "Bruno", "Gabriel", "Lucas", "Pedro", "Vinícius", "Rodrigo", "Diogo", "Felipe", "Gonçalo"},
			LastNames:  []string{"Silva", "Santos", "Ferreira", "Pereira", "Oliveira", "Costa", "Rodrigues", "Almeida", "Carvalho", "Souza", "Ribeiro", "Moreira"},
		},
		{
			Name:       "french",
			FirstNames: []string{"Lucas", "Hugo", "Théo", "Antoine", "Kylian", "Maxime", "Julien", "Raphaël", "Adrien", "Mathis", "Olivier", "Benjamin"},
			LastNames:  []string{"Martin", "Bernard", "Dubois", "Laurent", "Lefèvre", "Moreau", "Girard", "Roux", "Fournier", "Mercier", "Lambert", "Faure"},
		},
		{
			Name:       "german",
			FirstNames: []string{"Lukas", "Leon", "Felix", "Jonas", "Maximilian", "Niklas", "Florian", "Tobias", "Kai", "Timo", "Sebastian", "Matthias"},
			LastNames:  []string{"Müller", "Schmidt", "Schneider", "Fischer", "Weber", "Wagner", "Becker", "Hoffmann", "Schulz", "Koch", "Richter", "Neumann"},
		},
		{
			Name:       "italian",
			FirstNames: []string{"Lorenzo", "Federico", "Alessandro", "Marco", "Matteo", "Giorgio", "Nicolò", "Davide", "Simone", "Riccardo", "Gianluca", "Andrea"},
			LastNames:  []string{"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo", "Ricci", "Marino", "Greco", "Bruno", "Conti"},
		},
		{
			Name:       "dutch",
			FirstNames: []string{"Daan", "Sem", "Milan", "Thijs", "Jesse", "Bram", "Ruben", "Kevin", "Stijn", "Wout", "Arne", "Jeroen"},
			LastNames:  []string{"de Jong", "Jansen", "de Vries", "van Dijk", "Bakker", "Visser", "Peeters", "Mertens", "Janssens", "Smit", "Meijer", "Dekker"},
		},
		{
			Name:       "slavic",
			FirstNames: []string{"Luka", "Ivan", "Marko", "Nikola", "Dušan", "Jakub", "Tomáš", "Andriy", "Dmitri", "Mateusz", "Stefan", "Aleksandar"},
			LastNames:  []string{"Horvat", "Kovačević", "Petrović", "Jovanović", "Nowak", "Kowalski", "Novák", "Shevchenko", "Ivanov", "Popescu", "Lewandowski", "Babić"},
		},
		{
			Name:       "nordic",
			FirstNames: []string{"Erik", "Lars", "Magnus", "Oskar", "Anders", "Henrik", "Mikkel", "Emil", "Viktor", "Sander"},
			LastNames:  []string{"Andersson", "Johansson", "Nielsen", "Hansen", "Larsen", "Eriksen", "Lindqvist", "Berg", "Haaland", "Olsen"},
		},
		{
			Name:       "turkish",
			FirstNames: []string{"Emre", "Burak", "Mert", "Arda", "Hakan", "Kerem", "Cengiz", "Ozan"},
			LastNames:  []string{"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Aydın", "Öztürk", "Arslan"},
		},
		{
			Name:       "greek",
			FirstNames: []string{"Giorgos", "Konstantinos", "Dimitris", "Nikos", "Kostas", "Vangelis"},
			LastNames:  []string{"Papadopoulos", "Georgiou", "Nikolaidis", "Karagounis", "Vlachos", "Christodoulou"},
		},
		{
			Name:       "west_african",
			FirstNames: []string{"Chidi", "Emeka", "Kwame", "Kofi", "Samuel", "Victor", "Wilfred", "Ademola", "Thomas", "Daniel"},
			LastNames:  []string{"Okafor", "Adeyemi", "Mensah", "Boateng", "Osei", "Nwosu", "Eze", "Owusu", "Ndidi", "Iheanacho"},
		},
		{
			Name:       "francophone_african",
			FirstNames: []string{"Moussa", "Ibrahima", "Cheikh", "Yves", "Sadio", "Franck", "Serge", "Abdoulaye", "Idrissa", "Wilfried"},
			LastNames:  []string{"Diallo", "Traoré", "Koné", "Ndiaye", "Camara", "Touré", "Sissoko", "Mbeumo", "Diop", "Bamba"},
		},
		{
			Name:       "arabic",
			FirstNames: []string{"Mohamed", "Ahmed", "Youssef", "Omar", "Karim", "Hakim", "Riyad", "Salem", "Fahad", "Nabil"},
			LastNames:  []string{"Hassan", "Ibrahim", "El Amrani", "Benali", "Mansour", "Al-Dawsari", "Haddad", "Bensaid", "Saleh", "Aziz"},
		},
		{
			Name:       "japanese",
			FirstNames: []string{"Takumi", "Kaoru", "Daichi", "Ritsu", "Wataru", "Hiroki", "Takefusa", "Junya"},
			LastNames:  []string{"Tanaka", "Suzuki", "Takahashi", "Watanabe", "Ito", "Yamamoto", "Nakamura", "Kobayashi"},
		},
		{
			Name:       "korean",
			FirstNames: []string{"Min-jae", "Heung-min", "Kang-in", "Hee-chan", "Ji-sung", "Jae-sung"},
			LastNames:  []string{"Kim", "Lee", "Park", "Son", "Hwang", "Jung"},
		},
		{
			Name:       "indonesian",
			FirstNames: []string{"Egy", "Witan", "Asnawi", "Pratama", "Marselino", "Rizky"},
			LastNames:  []string{"Maulana", "Sulaeman", "Mangkualam", "Arhan", "Ferdinan", "Ridho"},
		},
		{
			Name:       "persian",
			FirstNames: []string{"Mehdi", "Sardar", "Alireza", "Saman", "Karim", "Reza"},
			LastNames:  []string{"Taremi", "Azmoun", "Jahanbakhsh", "Ghoddos", "Ansarifard", "Hosseini"},
		},
		{
			Name:       "chinese",
			FirstNames: []string{"Wei", "Lei", "Jun", "Hao", "Yang", "Xin"},
			LastNames:  []string{"Wang", "Li", "Zhang", "Liu", "Chen", "Wu"},
		},
	}
}
