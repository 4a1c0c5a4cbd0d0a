package store

import (
	"context"
)

// schemaExistsQuery checks whether the base ontology has been loaded.
const schemaExistsQuery = prefixes + `
ASK WHERE { ex:Movie rdf:type rdfs:Class }`

// ontologyUpdate declares the Movie and User classes and their properties.
const ontologyUpdate = prefixes + `
INSERT DATA {
    ex:Movie rdf:type rdfs:Class ;
        rdfs:label "Movie" ;
        rdfs:comment "A motion picture or film" .

    ex:User rdf:type rdfs:Class ;
        rdfs:label "User" ;
        rdfs:comment "A user of the movie recommendation system" .

    ex:title rdf:type rdf:Property ;
        rdfs:domain ex:Movie ;
        rdfs:range rdfs:Literal .

    ex:director rdf:type rdf:Property ;
        rdfs:domain ex:Movie ;
        rdfs:range rdfs:Literal .

    ex:genre rdf:type rdf:Property ;
        rdfs:domain ex:Movie ;
        rdfs:range rdfs:Literal .

    ex:rating rdf:type rdf:Property ;
        rdfs:domain ex:Movie ;
        rdfs:range rdfs:Literal .

    ex:hasFavorite rdf:type rdf:Property ;
        rdfs:domain ex:User ;
        rdfs:range ex:Movie .
}`

// EnsureSchema loads the base ontology if it is not already present.
// Run once at startup, before the server accepts requests.
func (s *MovieStore) EnsureSchema(ctx context.Context) error {
	exists, err := s.client.Ask(ctx, schemaExistsQuery)
	if err != nil {
		return storeErr("checking schema", err)
	}

	if exists {
		return nil
	}

	if err := s.client.Update(ctx, ontologyUpdate); err != nil {
		return storeErr("initializing schema", err)
	}

	s.log.Info("base ontology initialized")

	return nil
}

// Ping verifies the query endpoint is reachable. Used by readiness checks.
func (s *MovieStore) Ping(ctx context.Context) error {
	if _, err := s.client.Ask(ctx, schemaExistsQuery); err != nil {
		return storeErr("pinging store", err)
	}

	return nil
}
