package validate

import (
	"regexp"
	"strings"
)

// EnsemblPrefixes lists the species-specific prefixes for Ensembl stable
// IDs, used to build EnsemblPattern.
// See https://asia.ensembl.org/info/genome/stable_ids/prefixes.html.
var EnsemblPrefixes = []string{
	"ENSPMA",         // Petromyzon marinus (Lamprey)
	"ENSNGA",         // Nannospalax galili (Upper Galilee mountains blind mole rat)
	"ENSOPR",         // Ochotona princeps (Pika)
	"ENSMNE",         // Macaca nemestrina (Pig-tailed macaque)
	"MGP_C57BL6NJ_",  // Mus musculus (Mouse C57BL/6NJ)
	"MGP_LPJ_",       // Mus musculus (Mouse LP/J)
	"FB",             // Drosophila melanogaster (Fruitfly)
	"ENSORL",         // Oryzias latipes (Medaka)
	"ENSONI",         // Oreochromis niloticus (Tilapia)
	"ENSOCU",         // Oryctolagus cuniculus (Rabbit)
	"ENSXET",         // Xenopus tropicalis (Xenopus)
	"ENSRRO",         // Rhinopithecus roxellana (Golden snub-nosed monkey)
	"ENSCAT",         // Cercocebus atys (Sooty mangabey)
	"ENSAME",         // Ailuropoda melanoleuca (Panda)
	"MGP_CASTEiJ_",   // Mus musculus castaneus (Mouse CAST/EiJ)
	"ENSCSAV",        // Ciona savignyi
	"ENSMAU",         // Mesocricetus auratus (Golden Hamster)
	"ENSFAL",         // Ficedula albicollis (Flycatcher)
	"ENSTRU",         // Takifugu rubripes (Fugu)
	"ENSPTR",         // Pan troglodytes (Chimpanzee)
	"ENSTTR",         // Tursiops truncatus (Dolphin)
	"ENSCJA",         // Callithrix jacchus (Marmoset)
	"ENSSAR",         // Sorex araneus (Shrew)
	"ENSVPA",         // Vicugna pacos (Alpaca)
	"ENSLAC",         // Latimeria chalumnae (Coelacanth)
	"ENSPVA",         // Pteropus vampyrus (Megabat)
	"ENSPAN",         // Papio anubis (Olive baboon)
	"ENSHGLF",        // Heterocephalus glaber (Naked mole-rat female)
	"MGP_PWKPhJ_",    // Mus musculus musculus (Mouse PWK/PhJ)
	"MGP_NZOHlLtJ_",  // Mus musculus (Mouse NZO/HlLtJ)
	"ENSCAF",         // Canis lupus familiaris (Dog)
	"MGP_AJ_",        // Mus musculus (Mouse A/J)
	"ENSMOD",         // Monodelphis domestica (Opossum)
	"ENSMGA",         // Meleagris gallopavo (Turkey)
	"ENSPCO",         // Propithecus coquereli (Coquerel's sifaka)
	"ENSFDA",         // Fukomys damarensis (Damara mole rat)
	"ENSBTA",         // Bos taurus (Cow)
	"ENSGAL",         // Gallus gallus (Chicken)
	"ENSLAF",         // Loxodonta africana (Elephant)
	"ENSGGO",         // Gorilla gorilla gorilla (Gorilla)
	"ENSCAP",         // Cavia aperea (Brazilian guinea pig)
	"ENSMMU",         // Macaca mulatta (Macaque)
	"ENSAPL",         // Anas platyrhynchos (Duck)
	"ENSCEL",         // Caenorhabditis elegans
	"ENSMEU",         // Notamacropus eugenii (Wallaby)
	"ENSCGR",         // Cricetulus griseus (Chinese hamster)
	"ENSANA",         // Aotus nancymaae (Ma's night monkey)
	"ENSGMO",         // Gadus morhua (Cod)
	"ENSPEM",         // Peromyscus maniculatus bairdii (Northern American deer mouse)
	"MGP_C3HHeJ_",    // Mus musculus (Mouse C3H/HeJ)
	"ENSTGU",         // Taeniopygia guttata (Zebra Finch)
	"ENSSCE",         // Saccharomyces cerevisiae
	"ENSOGA",         // Otolemur garnettii (Bushbaby)
	"ENSACA",         // Anolis carolinensis (Anole lizard)
	"ENSTSY",         // Carlito syrichta (Tarsier)
	"ENSTBE",         // Tupaia belangeri (Tree Shrew)
	"MGP_AKRJ_",      // Mus musculus (Mouse AKR/J)
	"ENSDAR",         // Danio rerio (Zebrafish)
	"ENSMUS",         // Mus musculus (Mouse)
	"ENSETE",         // Echinops telfairi (Lesser hedgehog tenrec)
	"ENSSBO",         // Saimiri boliviensis boliviensis (Bolivian squirrel monkey)
	"ENS",            // Homo sapiens (Human)
	"ENSFCA",         // Felis catus (Cat)
	"MGP_BALBcJ_",    // Mus musculus (Mouse BALB/cJ)
	"MGP_PahariEiJ_", // Mus pahari (Shrew mouse)
	"ENSCSA",         // Chlorocebus sabaeus (Vervet-AGM)
	"ENSCCA",         // Cebus capucinus imitator (Capuchin)
	"ENSOAR",         // Ovis aries (Sheep)
	"ENSCHI",         // Capra hircus (Goat)
	"ENSDOR",         // Dipodomys ordii (Kangaroo rat)
	"ENSCHO",         // Choloepus hoffmanni (Sloth)
	"ENSSHA",         // Sarcophilus harrisii (Tasmanian devil)
	"ENSMPU",         // Mustela putorius furo (Ferret)
	"ENSNLE",         // Nomascus leucogenys (Gibbon)
	"ENSXMA",         // Xiphophorus maculatus (Platyfish)
	"ENSSSC",         // Sus scrofa (Pig)
	"ENSEEU",         // Erinaceus europaeus (Hedgehog)
	"ENSPSI",         // Pelodiscus sinensis (Chinese softshell turtle)
	"MGP_DBA2J_",     // Mus musculus (Mouse DBA/2J)
	"ENSAMX",         // Astyanax mexicanus (Cave fish)
	"MGP_WSBEiJ_",    // Mus musculus domesticus (Mouse WSB/EiJ)
	"ENSJJA",         // Jaculus jaculus (Lesser Egyptian jerboa)
	"ENSCIN",         // Ciona intestinalis
	"ENSPPA",         // Pan paniscus (Bonobo)
	"MGP_SPRETEiJ_",  // Mus spretus (Algerian mouse)
	"ENSCAN",         // Colobus angolensis palliatus (Angola colobus)
	"MGP_NODShiLtJ_", // Mus musculus (Mouse NOD/ShiLtJ)
	"ENSCLA",         // Chinchilla lanigera (Long-tailed chinchilla)
	"ENSCPO",         // Cavia porcellus (Guinea Pig)
	"ENSDNO",         // Dasypus novemcinctus (Armadillo)
	"ENSPFO",         // Poecilia formosa (Amazon molly)
	"ENSMIC",         // Microcebus murinus (Mouse Lemur)
	"MGP_FVBNJ_",     // Mus musculus (Mouse FVB/NJ)
	"MGP_CBAJ_",      // Mus musculus (Mouse CBA/J)
	"ENSSTO",         // Ictidomys tridecemlineatus (Squirrel)
	"ENSRNO",         // Rattus norvegicus (Rat)
	"ENSMOC",         // Microtus ochrogaster (Prairie vole)
	"ENSTNI",         // Tetraodon nigroviridis (Tetraodon)
	"ENSPPY",         // Pongo abelii (Orangutan)
	"ENSGAC",         // Gasterosteus aculeatus (Stickleback)
	"ENSLOC",         // Lepisosteus oculatus (Spotted gar)
	"ENSODE",         // Octodon degus (Degu)
	"ENSPCA",         // Procavia capensis (Hyrax)
	"ENSECA",         // Equus caballus (Horse)
	"ENSOAN",         // Ornithorhynchus anatinus (Platypus)
	"MGP_CAROLIEiJ_", // Mus caroli (Ryukyu mouse)
	"ENSHGLM",        // Heterocephalus glaber (Naked mole-rat male)
	"MGP_129S1SvImJ_", // Mus musculus (Mouse 129S1/SvImJ)
	"ENSRBI",          // Rhinopithecus bieti (Black snub-nosed monkey)
	"ENSMLU",          // Myotis lucifugus (Microbat)
	"ENSMLE",          // Mandrillus leucophaeus (Drill)
	"ENSMFA",          // Macaca fascicularis (Crab-eating macaque)
}

// EnsemblPattern matches Ensembl stable IDs.
// See https://asia.ensembl.org/info/genome/stable_ids/prefixes.html.
var EnsemblPattern = regexp.MustCompile(
	`^(` + strings.Join(EnsemblPrefixes, "|") + `)(E|FM|G|GT|P|R|T)\d{11}$`,
)
